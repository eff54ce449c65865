package config

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/johncf/ghi/internal/platform"
)

// applyFile evaluates a Lua config file in a sandboxed VM and merges the
// returned table into the config. The script must end with a `return`
// statement yielding a table; any other result is an error.
func (c *Config) applyFile(path string, info *platform.Info) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	return c.applyLua(string(code), path, info)
}

func (c *Config) applyLua(code, name string, info *platform.Info) error {
	L := newSandboxedVM()
	defer L.Close()

	if info != nil {
		platform.InjectPlatformTable(L, info)
	}

	if err := L.DoString(code); err != nil {
		return fmt.Errorf("evaluate config %s: %w", name, err)
	}

	ret := L.Get(-1)
	table, ok := ret.(*lua.LTable)
	if !ok {
		return fmt.Errorf("config %s must return a table, got %s", name, ret.Type())
	}

	if v := table.RawGetString("install_dir"); v.Type() == lua.LTString {
		c.InstallDir = v.String()
	}
	if v := table.RawGetString("cache_dir"); v.Type() == lua.LTString {
		c.CacheDir = v.String()
	}

	var err error
	if c.ExtraPositive, err = appendStrings(c.ExtraPositive, table, "extra_positive_keywords"); err != nil {
		return fmt.Errorf("config %s: %w", name, err)
	}
	if c.ExtraNegative, err = appendStrings(c.ExtraNegative, table, "extra_negative_keywords"); err != nil {
		return fmt.Errorf("config %s: %w", name, err)
	}
	return nil
}

// appendStrings collects the string elements of an array-valued field.
// Nil holes from platform conditionals (`platform.is_linux and "musl" or
// nil`) are skipped silently; other non-string values are an error.
func appendStrings(dst []string, table *lua.LTable, field string) ([]string, error) {
	v := table.RawGetString(field)
	if v.Type() == lua.LTNil {
		return dst, nil
	}
	arr, ok := v.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%s must be an array of strings, got %s", field, v.Type())
	}

	var badType lua.LValueType
	arr.ForEach(func(_, value lua.LValue) {
		switch value.Type() {
		case lua.LTNil:
		case lua.LTString:
			dst = append(dst, value.String())
		default:
			badType = value.Type()
		}
	})
	if badType != lua.LTNil {
		return nil, fmt.Errorf("%s must contain only strings, found %s", field, badType)
	}
	return dst, nil
}
