// Package i18nlayers merges internationalization configuration declared
// across a stack of configuration layers into one effective configuration.
//
// A stack is ordered by precedence: index 0 is the project layer, every
// following layer is an extended layer in the order it was composed. The
// project layer is authoritative for global settings such as lazy loading;
// extended layers fill in what the project leaves out.
//
// # Quick Start
//
// Load a stack from disk and apply the merged locales to the project's options:
//
//	stack, err := layer.Load(ctx, "./app")
//	if err != nil {
//	    return err
//	}
//
//	m := i18nlayers.New(i18nlayers.WithLogger(log))
//
//	opts := i18nlayers.ProjectOptions(stack)
//	m.ApplyLayerOptions(&opts, stack)
//
// # Locale Merging
//
// Without lazy loading, locale lists are merged in layer order. The first
// non-empty list decides whether the result holds bare codes or descriptors;
// entries of the other shape are ignored. Codes keep their first occurrence.
// Descriptors sharing a code are merged attribute by attribute, the layer
// closest to the project winning:
//
//	app:  locales: [{code: en, name: English}]
//	base: locales: [{code: en, name: EN, file: en.json}]
//
//	merged: [{code: en, name: English, file: en.json}]
//
// With lazy loading the project must declare a langDir. Every layer declaring
// both locales and a langDir is handed to the locale file merger (see package
// localefiles), which rewrites resource files relative to the project.
//
// Configuration shape problems never fail a merge. A project without an i18n
// block, a lazy project without langDir or mismatched locale shapes all yield
// empty or partial results.
//
// # Pages And Language Directories
//
// MergeLayerPages reports the pages directory of every layer to a route
// scanner, and LayerLangPaths yields the absolute language directory of every
// layer declaring one:
//
//	m.MergeLayerPages(func(dir string) {
//	    routes.Scan(dir)
//	}, stack)
//
//	for dir := range m.LayerLangPaths(stack) {
//	    watcher.Add(dir)
//	}
//
// # Runtime Config Files
//
// ResolveLayerConfigInfo resolves the runtime config file of every extended
// layer concurrently and returns the descriptors in layer order. Unlike shape
// problems, a resolution failure fails the whole call:
//
//	infos, err := m.ResolveLayerConfigInfo(ctx, stack, buildDir)
//	if err != nil {
//	    return err // errors.Is(err, i18nlayers.ErrConfigResolution)
//	}
//
// # Collaborators
//
// Path resolution, lazy locale file merging and runtime config resolution are
// replaceable with WithPathResolver, WithLocaleFileMerger and
// WithConfigResolver. Debug output goes to the logger set with WithLogger and
// every message carries a site attribute naming the operation.
package i18nlayers
