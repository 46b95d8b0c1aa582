// Package dotfiles maps filesystem paths into the repository's logical
// grouping and back out to deployment locations.
//
// The central entity is Dotfile: one tracked file or directory, the group
// root it belongs to, and the group's name. Dotfiles are built on demand
// by Resolve and are immutable; nothing is persisted.
//
// A Dotfile under Configs can be translated to the location it should be
// materialized at (DeploymentPath), and a Dotfile that is a directory can
// be expanded lazily into its members (Walk). The actual symlinking is
// left to the deployment layer consuming those paths.
package dotfiles
