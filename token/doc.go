// Package token provides tokenization of UCL documents.
//
// [Tokenize] splits a document into [Token]s, skipping white space and
// comments. [Quote], [Unquote] and [NeedsQuote] handle double-quoted
// strings; [ParseNumber] decodes numeric atoms with their multipliers.
package token
