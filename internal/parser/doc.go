/*
Package parser turns interaction net notation into an inet.Net.

The notation is line oriented:

	ROOT <id>
	ERA  <id>
	DUP  <id> <id> <id>
	LAM  <id> <id> <id>
	APP  <id> <id> <id>

where <id> is a run of word characters ([A-Za-z0-9_]) or the wildcard "*".
A line may hold several declarations. Text that does not form a declaration
is skipped without error; so is a known keyword that is not followed by
enough ports. An upper-case word that is not a keyword is reported as a
MalformedNodeError, and scanning carries on after it.

Each wildcard is replaced by a fresh hidden label and paired with a synthetic
Erase node. The terminator goes before the declaring node when the wildcard
port points up, and after it otherwise.
*/
package parser
