// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gpif

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ScriptName returns the environment script global that sets a flag.
// '.3048MHZ' is not an identifier, so it is spelled MHZ3048.
func ScriptName(flag Flag) string {
	if flag == FLAG_3048MHZ {
		return "MHZ3048"
	}
	return strings.TrimPrefix(flag.String(), ".")
}

// lookupScriptName maps a script global to its flag.
func lookupScriptName(name string) (flag Flag, ok bool) {
	for _, flag = range Flags() {
		if ScriptName(flag) == name {
			return flag, true
		}
	}
	return 0, false
}

// scriptPredeclared are the names a script may use without defining.
func scriptPredeclared() starlark.StringDict {
	pred := starlark.StringDict{}
	for sel := range FlagSelect(FLGSEL_COUNT) {
		pred[sel.String()] = starlark.String(sel.String())
	}
	return pred
}

// Exec runs a Starlark environment script and applies its top level
// assignments, for example:
//
//	TRICTL = 1
//	GPIFREADYCFG5 = 1
//	EPXGPIFFLGSEL = EF
//
// Globals starting with '_' and functions are ignored. The src argument
// is as for starlark.ExecFile: nil reads the file.
func (env *Environment) Exec(filename string, src any) (err error) {
	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, scriptPredeclared())
	if err != nil {
		return
	}

	updated := *env
	for _, name := range slices.Sorted(maps.Keys(globals)) {
		value := globals[name]
		if strings.HasPrefix(name, "_") {
			continue
		}
		if _, ok := value.(starlark.Callable); ok {
			continue
		}

		flag, ok := lookupScriptName(name)
		if !ok {
			err = fmt.Errorf("%v: %w '%v'", filename, ErrScriptName, name)
			return
		}

		switch v := value.(type) {
		case starlark.Int:
			u64, ok := v.Uint64()
			if ok {
				err = updated.Set(flag, uint(u64))
			} else {
				err = fmt.Errorf("%w: %v %v", ErrInvalidValue, name, v)
			}
		case starlark.Bool:
			u := uint(0)
			if v {
				u = 1
			}
			err = updated.Set(flag, u)
		case starlark.String:
			err = updated.SetText(flag, string(v))
		default:
			err = fmt.Errorf("%w: %v is a %v", ErrInvalidValue, name, value.Type())
		}
		if err != nil {
			err = fmt.Errorf("%v: %w", filename, err)
			return
		}
	}

	*env = updated
	return
}
