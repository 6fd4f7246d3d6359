// Package networth records personal financial snapshots and derives
// summaries from them.
//
// A [Snapshot] is one point-in-time record of a complete financial
// position: assets, liabilities, incomes and expenses. All snapshots live
// in a single [Document], persisted as one JSON payload through a pluggable
// [Backend]. The [Store] owns the document, the active-snapshot pointer and
// every mutation.
//
// Derived metrics are pure functions of a snapshot's [Data]: headline
// totals ([Data.Summary]), five financial health ratios ([Data.Ratios]) and
// category aggregates ([GroupAmounts]). The query layer ([SortItems],
// [FilterItems]) sorts and filters item lists without mutating them.
package networth
