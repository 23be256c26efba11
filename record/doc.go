// Package record implements declarative record types: ordered sets of typed
// property descriptors with coercion, validation, required/read-only
// modifiers and defaults, plus the JSON-primitive and native-state codecs
// over the instances they construct.
package record
