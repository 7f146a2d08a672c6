// File: doc.go
// Title: Config Package Documentation
// Description: Package documentation for cmake-format configuration loading.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-03
// Modified: 2026-08-03
//
// Change History:
// - 2026-08-03 v0.1.0: Initial documentation

/*
Package config loads cmake-format settings from TOML or YAML files.

Beyond layout settings consumed by the downstream layout engine (line width,
tab size, sort enablement), a configuration file may declare grammars for
commands the built-in registry does not know. Each declared command names the
arity of its positional arguments, its flags, and the arity of each keyword's
payload; the engine compiles these declarations into ordinary declarative
grammars at startup.

Example (TOML):

	line_width = 100

	[additional_commands.my_install_helper]
	pargs = "+"
	flags = ["QUIET"]
	[additional_commands.my_install_helper.kwargs]
	DESTINATION = "1"
	SOURCES = "+"
*/
package config
