package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	herrors "github.com/qiushiyan/hop/internal/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"github.com/tidwall/pretty"
)

// encodeOptions pretty-prints with sorted keys so every write is stable and
// diff-friendly.
var encodeOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: true,
}

// Encode serializes the configuration as pretty-printed JSON with
// lexicographically sorted keys.
func Encode(cfg *Configuration) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("cannot encode nil configuration")
	}
	out := cfg.Clone()
	out.normalize()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return pretty.PrettyOptions(buf.Bytes(), encodeOptions), nil
}

// Decode parses a config document. Key order and whitespace are free, and
// comments and trailing commas are tolerated. Schema violations are reported
// as PARSE_FAILED errors carrying the dotted path of the first bad value.
func Decode(data []byte) (*Configuration, error) {
	data = jsonc.ToJSON(data)
	if !gjson.ValidBytes(data) {
		return nil, herrors.Malformed(syntaxDetail(data), "")
	}

	root := gjson.ParseBytes(data)
	if err := checkConfiguration(root); err != nil {
		return nil, err
	}

	cfg := buildConfiguration(root)
	cfg.normalize()
	return cfg, nil
}

// MarshalJSON omits absent keywords but keeps an empty list, so an empty
// keywords array survives a save.
func (l Link) MarshalJSON() ([]byte, error) {
	type plain Link
	out := struct {
		plain
		Keywords *[]string `json:"keywords,omitempty"`
	}{plain: plain(l)}
	if l.Keywords != nil {
		out.Keywords = &l.Keywords
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func syntaxDetail(data []byte) string {
	var v any
	err := json.Unmarshal(data, &v)
	var syntaxErr *json.SyntaxError
	if herrors.As(err, &syntaxErr) {
		return fmt.Sprintf("%s (offset %d)", syntaxErr.Error(), syntaxErr.Offset)
	}
	if err != nil {
		return err.Error()
	}
	return "the given data was not valid JSON"
}

// The check* functions walk the document against the schema. Optional
// fields accept absence and null; required fields report missingKey when
// absent and missingValue when null.

func checkConfiguration(root gjson.Result) error {
	if err := checkObject(root, ""); err != nil {
		return err
	}
	if v, ok := optional(root, "version"); ok {
		if err := checkInt(v, "version"); err != nil {
			return err
		}
	}
	if v, ok := optional(root, "globalHotkey"); ok {
		if err := checkHotkey(v, "globalHotkey"); err != nil {
			return err
		}
	}
	if v, ok := optional(root, "categories"); ok {
		return checkArray(v, "categories", checkCategory)
	}
	return nil
}

func checkCategory(v gjson.Result, path string) error {
	if err := checkObject(v, path); err != nil {
		return err
	}
	if err := requireString(v, "name", path); err != nil {
		return err
	}
	if links, ok := optional(v, "links"); ok {
		return checkArray(links, join(path, "links"), checkLink)
	}
	return nil
}

func checkLink(v gjson.Result, path string) error {
	if err := checkObject(v, path); err != nil {
		return err
	}
	if err := requireString(v, "name", path); err != nil {
		return err
	}
	if err := requireString(v, "url", path); err != nil {
		return err
	}
	if kw, ok := optional(v, "keywords"); ok {
		if err := checkArray(kw, join(path, "keywords"), checkString); err != nil {
			return err
		}
	}
	if sc, ok := optional(v, "shortcut"); ok {
		return checkHotkey(sc, join(path, "shortcut"))
	}
	return nil
}

func checkHotkey(v gjson.Result, path string) error {
	if err := checkObject(v, path); err != nil {
		return err
	}
	if err := requireString(v, "key", path); err != nil {
		return err
	}
	mods := v.Get("modifiers")
	if !mods.Exists() {
		return herrors.MissingKey("modifiers", path)
	}
	return checkArray(mods, join(path, "modifiers"), checkModifier)
}

func checkModifier(v gjson.Result, path string) error {
	if err := checkString(v, path); err != nil {
		return err
	}
	if !Modifier(v.Str).Valid() {
		return herrors.Malformed(fmt.Sprintf("cannot initialize modifier from invalid value %q at %s", v.Str, path), path)
	}
	return nil
}

func checkArray(v gjson.Result, path string, elem func(gjson.Result, string) error) error {
	if v.Type == gjson.Null {
		return herrors.MissingValue("array", path)
	}
	if !v.IsArray() {
		return herrors.TypeMismatch("array", path)
	}
	for i, item := range v.Array() {
		if err := elem(item, join(path, strconv.Itoa(i))); err != nil {
			return err
		}
	}
	return nil
}

func checkObject(v gjson.Result, path string) error {
	if v.Type == gjson.Null {
		return herrors.MissingValue("object", path)
	}
	if !v.IsObject() {
		return herrors.TypeMismatch("object", path)
	}
	return nil
}

func checkString(v gjson.Result, path string) error {
	if v.Type == gjson.Null {
		return herrors.MissingValue("string", path)
	}
	if v.Type != gjson.String {
		return herrors.TypeMismatch("string", path)
	}
	return nil
}

func checkInt(v gjson.Result, path string) error {
	if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
		return herrors.TypeMismatch("int", path)
	}
	return nil
}

func requireString(obj gjson.Result, key, path string) error {
	v := obj.Get(key)
	if !v.Exists() {
		return herrors.MissingKey(key, path)
	}
	return checkString(v, join(path, key))
}

// optional returns the value at key unless it is absent or null.
func optional(obj gjson.Result, key string) (gjson.Result, bool) {
	v := obj.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return v, false
	}
	return v, true
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// The build* functions read a document that passed checkConfiguration. They
// look keys up exactly as the checks do, so a key that differs from the
// schema only by case is ignored rather than decoded unchecked.

func buildConfiguration(root gjson.Result) *Configuration {
	cfg := New()
	if v, ok := optional(root, "version"); ok {
		cfg.Version = int(v.Int())
	}
	if v, ok := optional(root, "globalHotkey"); ok {
		cfg.GlobalHotkey = buildHotkey(v)
	}
	if v, ok := optional(root, "categories"); ok {
		for _, item := range v.Array() {
			cfg.Categories = append(cfg.Categories, buildCategory(item))
		}
	}
	return cfg
}

func buildCategory(v gjson.Result) Category {
	cat := Category{Name: v.Get("name").Str}
	if links, ok := optional(v, "links"); ok {
		for _, item := range links.Array() {
			cat.Links = append(cat.Links, buildLink(item))
		}
	}
	return cat
}

func buildLink(v gjson.Result) Link {
	link := Link{
		Name: v.Get("name").Str,
		URL:  v.Get("url").Str,
	}
	if kw, ok := optional(v, "keywords"); ok {
		link.Keywords = []string{}
		for _, item := range kw.Array() {
			link.Keywords = append(link.Keywords, item.Str)
		}
	}
	if sc, ok := optional(v, "shortcut"); ok {
		link.Shortcut = buildHotkey(sc)
	}
	return link
}

func buildHotkey(v gjson.Result) *Hotkey {
	hk := &Hotkey{Key: v.Get("key").Str, Modifiers: []Modifier{}}
	for _, item := range v.Get("modifiers").Array() {
		hk.Modifiers = append(hk.Modifiers, Modifier(item.Str))
	}
	return hk
}
