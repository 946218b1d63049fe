// Package codec converts model entities to and from tagged JSON.
//
// Every entity is encoded as an object with a single key naming its type:
//
//	{"__Performer__": {"name": "Melanie", "is_band": false}}
//
// Lineups and festivals nest their children as arrays of tagged objects:
//
//	{"__Lineup__": {"performers": [{"__Performer__": {...}}], "date": "1969-08-16"}}
//
// Files written by earlier versions stored nested arrays as JSON strings and
// used "_Performer__name" for the name; the decoders accept both.
//
// # Usage
//
//	data, err := codec.EncodeFestival(woodstock)
//	...
//	v, err := codec.Decode(data) // *model.Festival
package codec
