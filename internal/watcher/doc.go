// Package watcher re-runs a callback whenever pacman's local package
// database changes.
//
// pacman keeps one directory per installed package under
// /var/lib/pacman/local, so installs, upgrades and removals all show up as
// create or remove events on that directory. A transaction touches many
// entries at once; events are debounced and the callback waits until
// pacman's lock file is gone, so it runs once per transaction against a
// settled database.
//
// Example usage:
//
//	w := watcher.New(client.LocalDBPath(), watcher.Options{LockFile: client.LockPath()}, logger)
//	err := w.Run(ctx, func(ctx context.Context) error {
//		return printReport(ctx)
//	})
package watcher
