package seedling

import _ "embed"

//go:embed script.yaml
var defaultScript []byte

// DefaultScript returns the embedded stage script. It panics if the embedded
// file is invalid, which only a broken build can cause.
func DefaultScript() *Script {
	s, err := ParseScript(defaultScript)
	if err != nil {
		panic("seedling: embedded script: " + err.Error())
	}
	return s
}

// DefaultScriptYAML returns a copy of the embedded script source.
func DefaultScriptYAML() []byte {
	return append([]byte(nil), defaultScript...)
}
