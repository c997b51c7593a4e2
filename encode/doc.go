// Package encode renders UCL objects as pretty JSON, compact JSON, UCL
// configuration or YAML, optionally with terminal colors.
//
// For the document `int = [1, 42, 666]` the formats produce
//
//	JSON     {\n    "int": [\n        1,\n        42,\n        666\n    ]\n}
//	compact  {"int":[1,42,666]}
//	config   int [\n    1,\n    42,\n    666,\n]\n
//	YAML     int: [\n    1,\n    42,\n    666\n]
package encode
