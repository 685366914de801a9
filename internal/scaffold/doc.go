// Package scaffold generates new CWL artifacts from embedded templates. It
// powers the create-*-from-template commands, producing the registry's
// directory layout (<root>/<name>/<version>/<name>__<version>.cwl) with a
// pre-filled document of the right class for each artifact kind.
package scaffold
