package secrets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tuck-sh/tuck/pkg/dotfiles"
	"github.com/tuck-sh/tuck/pkg/errors"
	"github.com/tuck-sh/tuck/pkg/repo"
)

// EncryptGroup encrypts the given files into Secrets/<group>, recreating
// each file's home-relative directory layout under the group root. Files
// that cannot be read are reported and skipped; everything written before
// a failure stays in place.
func (s *Session) EncryptGroup(group string, files []string) error {
	destDir := filepath.Join(repo.CategorySecrets.Dir(s.root), group)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", destDir)
	}

	var missing []string
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", file)
		}

		encrypted, err := s.EncryptFile(abs)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrFileNotFound) {
				log.Warn().Str("file", file).Msg("Skipping unreadable file")
				missing = append(missing, file)
				continue
			}
			return err
		}

		dest := filepath.Join(destDir, storedName(s.settings.Home, abs))
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(dest))
		}
		if err := os.WriteFile(dest, encrypted, 0600); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest)
		}

		log.Debug().Str("file", abs).Str("dest", dest).Msg("Encrypted file")
	}

	if len(missing) > 0 {
		return errors.Newf(errors.ErrFileNotFound,
			"couldn't encrypt: %s", strings.Join(missing, ", "))
	}
	return nil
}

// storedName computes the path a file is stored under inside the group:
// its position relative to the home directory, or just its base name for
// files outside the home directory.
func storedName(home string, abs string) string {
	rel, err := filepath.Rel(home, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Base(abs)
	}
	return rel
}

// DecryptGroup decrypts every regular file under Secrets/<group> and
// writes the plaintexts into destDir, mirroring the directory layout
// stored under the group root. Fails with NOT_A_DIRECTORY when the group
// does not exist and DECRYPTION_FAILED on the first file that does not
// authenticate.
func (s *Session) DecryptGroup(group string, destDir string) error {
	groupDir := filepath.Join(repo.CategorySecrets.Dir(s.root), group)

	d, err := dotfiles.Resolve(s.settings, groupDir)
	if err != nil {
		return err
	}

	walker, err := d.Walk(s.settings)
	if err != nil {
		return err
	}

	for walker.Next() {
		if walker.IsDir() {
			continue
		}
		entry := walker.Dotfile()

		plaintext, err := s.DecryptFile(entry.Path)
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(groupDir, entry.Path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInternal,
				"failed to compute %q relative to its group", entry.Path)
		}

		dest := filepath.Join(destDir, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(dest))
		}
		if err := os.WriteFile(dest, plaintext, 0600); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest)
		}

		log.Debug().Str("file", entry.Path).Str("dest", dest).Msg("Decrypted file")
	}

	return walker.Err()
}
