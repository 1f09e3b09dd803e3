// Package layer describes configuration layers and composes them into a stack.
//
// A stack is ordered by precedence. Index 0 is the project layer and is
// authoritative for global settings; every following layer is an extended
// layer contributing defaults that the layers before it may override.
//
// # Loading From Disk
//
// Each layer directory may contain a layer.yaml file:
//
//	srcDir: src
//	extends:
//	  - ../base
//	dir:
//	  pages: views
//	i18n:
//	  lazy: true
//	  langDir: lang
//	  locales:
//	    - code: en
//	      file: en.json
//
// Load reads the project directory and follows extends entries depth-first,
// in declaration order, producing the same ordering a host composes layers in:
//
//	stack, err := layer.Load(ctx, "./app")
//	if err != nil {
//		return err
//	}
//	project := stack.Project()
//
// A directory without a layer.yaml file is a valid layer with default settings.
// Extends cycles are rejected with ErrCircularExtends; a layer reached twice
// through different parents is kept once, at its first position.
package layer
