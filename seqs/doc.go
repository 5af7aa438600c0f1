/*
Package seqs provides predicates and window helpers for Go 1.23+ iterators (iter.Seq).

  - **Quantifiers**: [All] and [Any] short-circuit on the first deciding element.
  - **Windows**: [Skip] drops a leading part of a sequence.
  - **Containment**: [ContainsAll] and [ContainsSome] test one sequence against another,
    with [ContainsAllFunc] and [ContainsSomeFunc] for custom equality.

Offsets compose rather than being parameters:

	seqs.ContainsAll(seqs.Skip(haystack, 1), slices.Values(needles))

The haystack is read at most once, so iterators that can only be ranged over a single
time are accepted.
*/
package seqs
