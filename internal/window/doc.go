/*
Package window owns the live set of floating windows.

A Manager opens windows from a frozen template catalog. Each window gets a
key of the form "window-N", an initial point resolved from its template's
anchor, and is then cascaded away from any visible window sitting on exactly
the same point:

	catalog, _ := template.Default()
	mgr := window.NewManager(catalog, bus, window.Config{})
	key, err := mgr.Open(ctx, "board")

Only exact coincidence of top-left points counts as a collision; partially
overlapping windows are left alone.
*/
package window
