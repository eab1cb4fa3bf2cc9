// Package fuzztests houses Go fuzz harnesses that push arbitrary bytes
// through the read pipeline (source -> parser -> normalize -> format). Its
// goal is to guard against panics and to check that whatever parses also
// survives a write/read round trip.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
