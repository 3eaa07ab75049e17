/*
Package setmatch builds a membership table from several named sets of
strings. Each input set becomes one column, each distinct string found
in any set becomes one row, and every cell tells whether that string is
a member of that column's set. Given the files

	set1.txt: a b        (one item per line)
	set2.txt: b c

the resulting table is

	key  set1  set2
	a    ✓
	b    ✓     ✓
	c          ✓

Rows are ordered lexicographically by key, columns keep the input
order, and matching is exact and case-sensitive. The same input always
produces the same table.

[Match] is the core operation; it is pure and does no I/O. [Loader]
turns line-delimited text files into the named sets Match consumes,
expanding glob patterns and detecting non-UTF-8 encodings on the way.
Rendering a [MatchResult] into CSV, Markdown, HTML, XLSX or a terminal
table is done by the render subpackage.
*/
package setmatch
