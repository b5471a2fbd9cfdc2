// Package fuzztests houses Go fuzz harnesses that exercise the decoding
// pipeline (source -> lexer -> parser -> deserializer) and the printer.
// Its goal is to smoke test robustness and guard against panics or hangs
// on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet
// и прогоняют их через лексер/десериализатор/принтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/decode,
// internal/format, internal/testkit.

package fuzztests
