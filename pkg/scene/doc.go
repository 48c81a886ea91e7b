// Package scene describes label placement problems and their solutions in
// file form.
//
// A [Scene] lists labels, each with an anchor point and a text, inside a
// frame. Scenes are read from JSON, TOML or YAML; the format is chosen by
// file extension. Before a scene is handed to the repulsion engine, every
// label is turned into a box sized from its text (see [TextWidth]) and
// centred on its anchor.
//
// A [Layout] is the engine's answer: one [Placement] per label plus the
// run diagnostics. Layouts are always JSON.
//
//	s, err := scene.ReadFile("cities.toml")
//	if err != nil {
//	    return err
//	}
//	res, err := repel.Run(s.Boxes(), xlim, ylim, opts)
//	l := scene.BuildLayout(s, res, seed)
//	err = scene.WriteLayoutFile(l, "cities.layout.json")
package scene
