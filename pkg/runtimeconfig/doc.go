// Package runtimeconfig locates and describes a layer's i18n runtime
// configuration file.
//
// The file name comes from the layer's vueI18n setting and defaults to
// "i18n.config". When the name has no extension the resolver probes, in order:
//
//	.yaml .yml .json .js .mjs .ts
//
// A missing file is not an error: the returned Info simply has a nil Meta.
// Static files (YAML or JSON) are parsed so callers can inspect their content;
// script files are only described.
//
// # Basic Usage
//
//	r := runtimeconfig.NewResolver()
//	info, err := r.Resolve(ctx, *layer.I18n, "/app/.build", layer.RootDir)
//	if err != nil {
//		return err
//	}
//	if info.Meta != nil {
//		fmt.Println(info.Meta.LoadPath)
//	}
//
// # Caching
//
// CachedResolver memoizes resolutions per build dir, root dir and file name
// in a cache.Cache, and collapses concurrent resolutions of the same key into
// one call. Forget drops one layer after its config file changed:
//
//	cached := runtimeconfig.NewCachedResolver(runtimeconfig.NewResolver(), nil)
//	defer cached.Close()
//
//	_ = cached.Forget(ctx, l.I18n, buildDir, l.RootDir)
package runtimeconfig
