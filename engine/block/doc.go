/*
Package block defines the typed content blocks a document is composed of.

A document is a non-empty ordered sequence of blocks. Each block variant is
a closed struct type; the Block interface is the tagged union over them.
Blocks are value types and are replaced, not mutated: an edit produces a
new value carrying the same ID.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package block
