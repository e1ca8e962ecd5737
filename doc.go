/*
Package format renders arbitrary-precision integers as strings controlled
by picture strings, following the integer picture language of [XPath and
XQuery Functions and Operators 3.1].

# Picture Strings

A picture string describes one digit position per character, read left to
right from the most significant position:

  - '#' marks an optional digit, filled only if the number has a digit
    left for it.
  - A decimal digit marks a mandatory digit, filled from the number or
    padded with zero. All digits in one picture must come from a single
    Unicode digit family, and that family also selects the script the
    output digits are written in.
  - Any character that is neither a letter nor a number marks a group
    separator, emitted between digit groups.

For example:

	| Picture   | Input    | Output      |
	| --------- | -------- | ----------- |
	| 0000      | 123      | 0123        |
	| 0,000     | -1222333 | -1,222,333  |
	| #,##0     | 15453    | 15,453      |
	| 12.22.000 | 1222333  | 12.22.333   |
	| ١         | 15       | ١٥          |

# Grouping

A picture whose separators all use one character and one group size, such
as "0,000" or "#,##0", is treated as a single group that repeats
indefinitely leftward, so numbers of any magnitude keep their grouping.
A picture with mixed separators or mixed group sizes, such as "12.22.000",
applies its groups exactly once; digits beyond the picture are emitted
without further separators.

# Digit Families

A digit family is the run of ten characters representing 0 through 9 in
one script, identified by its zero character. The family is detected from
the mandatory digits of the picture, and every output digit is
transliterated into it. A picture may therefore consist of a single digit
of the desired script, such as "١" for Arabic-Indic output.

Transliteration is strictly positional. Scripts whose digits read in the
opposite direction, such as N'Ko, still receive their digits in
most-significant-first order.

# Errors

Parsing is the only operation that can fail, and it fails with a single
kind: every error returned by [Parse] or [FormatInt] wraps
[ErrInvalidPicture]. Formatting an already parsed [Picture] never fails.

# Concurrency

[Picture] values are immutable and safe for concurrent use by multiple
goroutines. A format call keeps all intermediate state on its own stack;
no state is shared or retained across calls.

[XPath and XQuery Functions and Operators 3.1]: https://www.w3.org/TR/xpath-functions-31/#func-format-integer
*/
package format
