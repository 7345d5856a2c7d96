// Package config defines the hop configuration document and its JSON schema.
//
// The configuration is a single JSON file, by default at
// ~/.config/hop/config.json. It holds categories of links, optional per-link
// hotkeys, and the global hotkey that toggles the search panel.
//
// # Configuration Structure
//
//	{
//	  "version": 1,
//	  "globalHotkey": { "key": "o", "modifiers": ["command", "shift"] },
//	  "categories": [
//	    {
//	      "name": "Work",
//	      "links": [
//	        {
//	          "name": "Tracker",
//	          "url": "https://tracker.example.com",
//	          "keywords": ["issues", "tickets"],
//	          "shortcut": { "key": "1", "modifiers": ["command", "option"] }
//	        }
//	      ]
//	    }
//	  ]
//	}
//
// # Schema Defaults
//
// Defaults are part of the schema and applied by Decode:
//   - version: 1 when absent or null
//   - categories, links: empty when absent or null
//   - globalHotkey, keywords, shortcut: optional, absent when null
//
// Required: category name, link name and url, hotkey key and modifiers.
//
// # Identity
//
// A link's URL is its identity. URLs must be unique across the whole
// configuration; hotkey diffing keys bindings by URL. Decode does not enforce
// this, Validate reports it.
//
// # Encoding
//
// Encode always writes two-space indented JSON with sorted keys. Decode
// accepts any key order and whitespace, and tolerates comments and trailing
// commas left by hand edits.
//
// # Thread Safety
//
// A *Configuration handed out by the store is a shared snapshot and must be
// treated as read-only. Use Clone before modifying.
package config
