// Package rollingstats provides incremental statistics over numeric
// streams. Each statistic is updated per observation without revisiting
// earlier values: the median subpackage maintains an online median with
// O(log n) inserts and O(1) queries, and Stats in this package tracks
// running scalar moments.
package rollingstats
