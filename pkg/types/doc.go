// Package types defines the Category entity, the Index interface over a
// category forest, CLI configuration, and the standard error values shared
// by the store, the fixture loader, and the catindex command.
package types
