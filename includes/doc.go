/*
Package includes answers "does this collection contain all (or some) of these values?"
for dynamically shaped data.

Values form a closed set: scalars ([Number], [Bool], [Null] and the nil Value), strings
([Text]), ordered sequences ([*List]) and insertion-ordered mappings ([*Record]).
[ContainsAll] and [ContainsSome] take a container, a query and an optional start offset:

	tags := includes.NewList(includes.Text("go"), includes.Text("iter"), includes.Number(1))
	includes.ContainsAll(tags, includes.NewList(includes.Text("iter"), includes.Number(1))) // true
	includes.ContainsSome(includes.Text("string"), includes.Text("bonk"))                 // true, shares 'n'

# Equality

Elements match by [SameValueZero]: scalars and strings by value (NaN matches NaN),
lists and records by identity only. A record holding an equal but distinct list does not
include it.

# Names

Each check is also exported under synonyms: [IncludesAll], [IncludesEvery] and
[ContainsEvery] for [ContainsAll]; [IncludesSome], [IncludesAny] and [ContainsAny]
for [ContainsSome].

# Fixtures

[Decode] builds values from YAML or JSON. Anchors and aliases resolve to the same
instance, which makes identity cases easy to write down.

The typed counterparts for Go slices and iterators live in sliceutil and seqs.
*/
package includes
