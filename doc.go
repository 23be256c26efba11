package gorecord

// Package gorecord provides:
//
// - An exact-precision numeric normalizer (DecodeNumber) that never routes
//   integer text through float parsing
// - A structural comparator (Equal) over JSON-primitive trees with numeric and
//   textual normalization
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; the record-type DSL and codecs
//   live under record/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	t := record.NewType("Cheese").
//		Field("variety", record.String()).
//		Field("smelliness", record.Float()).
//		MustBuild()
//	inst, err := record.FromJSON(ctx, t, tree)
//	err = gorecord.Equal(inst.JSONData(), tree)
