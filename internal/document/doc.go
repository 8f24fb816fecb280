// Package document renders notes into word-processor documents.
//
// A [Chain] tries its generators in order: the Office Open XML generator
// first and the Word-compatible HTML generator as the fallback. Callers
// receive a [models.Artifact] whose Extension says which one succeeded.
package document
