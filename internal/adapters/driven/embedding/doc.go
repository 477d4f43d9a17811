// Package embedding provides decorators that wrap an embedding
// service with cross-cutting behaviour: request throttling and vector
// caching. The concrete providers live in the ollama and openai
// subpackages; decorators compose around any of them.
package embedding
