// Package script runs level trigger scripts. A level script is a small
// tengo program defining onCoin/onFlag/onRespawn handlers; the host
// dispatches world events into it and exposes a narrow engine surface
// (logging, sound cues) back. Scripts can keep state between events in
// a mutable state map. Script failures are reported, never fatal: the
// simulation must not halt because a trigger handler is broken.
package script

import (
	"embed"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Engine is the host surface a level script may call into. Nil
// callbacks are safe no-ops.
type Engine struct {
	Log   func(msg string)
	Sound func(name string)
}

const dispatchScript = `
if __event == "coin" {
	onCoin(__engine, __state, __count)
} else if __event == "flag" {
	onFlag(__engine, __state)
} else if __event == "respawn" {
	onRespawn(__engine, __state)
}
`

// Runtime holds a compiled level script plus its persistent state map.
type Runtime struct {
	compiled *tengo.Compiled
	state    *tengo.Map
	engine   *tengo.ImmutableMap
}

// Load compiles the named embedded script (the .tengo suffix is
// optional).
func Load(name string, eng Engine) (*Runtime, error) {
	clean := name
	if !strings.HasSuffix(clean, ".tengo") {
		clean += ".tengo"
	}
	if !strings.HasPrefix(clean, "scripts/") {
		clean = "scripts/" + clean
	}
	src, err := ScriptsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return New(src, eng)
}

// New compiles a level script. The script must define all three event
// handlers; the dispatch tail appended here calls into them.
func New(src []byte, eng Engine) (*Runtime, error) {
	s := tengo.NewScript([]byte(string(src) + "\n" + dispatchScript))
	_ = s.Add("__event", "")
	_ = s.Add("__count", 0)
	_ = s.Add("__engine", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}

	rt := &Runtime{
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		engine:   buildEngine(eng),
	}
	// One pass with no event resolves the handler definitions and
	// surfaces missing ones as an error up front.
	if err := rt.Dispatch("", 0); err != nil {
		return nil, err
	}
	for _, fn := range []string{"onCoin", "onFlag", "onRespawn"} {
		if !compiled.IsDefined(fn) {
			return nil, fmt.Errorf("script: missing handler %s", fn)
		}
	}
	return rt, nil
}

// Dispatch runs the script for one event. count carries the running
// coin total for coin events and is ignored by the rest.
func (r *Runtime) Dispatch(event string, count int) error {
	if err := r.compiled.Set("__event", event); err != nil {
		return err
	}
	if err := r.compiled.Set("__count", count); err != nil {
		return err
	}
	if err := r.compiled.Set("__engine", r.engine); err != nil {
		return err
	}
	if err := r.compiled.Set("__state", r.state); err != nil {
		return err
	}
	return r.compiled.Run()
}

func buildEngine(eng Engine) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if eng.Log == nil || len(args) < 1 {
			return tengo.UndefinedValue, nil
		}
		eng.Log(objectAsString(args[0]))
		return tengo.UndefinedValue, nil
	}}

	values["sound"] = &tengo.UserFunction{Name: "sound", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if eng.Sound == nil || len(args) < 1 {
			return tengo.UndefinedValue, nil
		}
		eng.Sound(objectAsString(args[0]))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(o tengo.Object) string {
	if s, ok := tengo.ToString(o); ok {
		return s
	}
	return o.String()
}
