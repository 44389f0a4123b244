package extract

import (
	"strings"
)

// jsonify rewrites a JavaScript object literal into JSON: bare keys get
// quoted, single-quoted strings become double-quoted, comments and
// trailing commas are dropped. Members whose value JSON cannot carry,
// function expressions and identifier references, are removed entirely.
func jsonify(object string) string {
	var (
		out      []byte
		keyStart = -1
	)

	index := 0
	for index < len(object) {
		char := object[index]

		switch {
		case strings.HasPrefix(object[index:], "//"):
			offset := strings.IndexByte(object[index:], '\n')
			if offset < 0 {
				index = len(object)
			} else {
				index += offset
			}

		case strings.HasPrefix(object[index:], "/*"):
			offset := strings.Index(object[index+2:], "*/")
			if offset < 0 {
				index = len(object)
			} else {
				index += offset + 4
			}

		case char == '\'' || char == '"':
			literal, next := readString(object, index)
			if upcoming(object, next) == ':' {
				keyStart = len(out)
			}
			out = append(out, literal...)
			index = next

		case char == '-' || ('0' <= char && char <= '9'):
			end := index + 1
			for end < len(object) && isNumberPart(object[end]) {
				end++
			}
			out = append(out, object[index:end]...)
			index = end

		case isWordStart(char):
			word, next := readWord(object, index)
			switch {
			case upcoming(object, next) == ':':
				keyStart = len(out)
				out = append(out, '"')
				out = append(out, word...)
				out = append(out, '"')
				index = next
			case word == "true" || word == "false" || word == "null":
				out = append(out, word...)
				index = next
			default:
				out, index = dropMember(out, keyStart, object, index)
			}

		case char == '(':
			out, index = dropMember(out, keyStart, object, index)

		case char == ',':
			if next := upcoming(object, index+1); next == '}' || next == ']' {
				index++
			} else {
				out = append(out, char)
				index++
			}

		default:
			out = append(out, char)
			index++
		}
	}

	return string(out)
}

// dropMember erases an already-emitted key whose value turned out to be
// unrepresentable and skips over the value. Exactly one of the member's
// surrounding commas goes with it.
func dropMember(out []byte, keyStart int, object string, index int) ([]byte, int) {
	index = consumeValue(object, index)

	if keyStart >= 0 && keyStart <= len(out) {
		out = out[:keyStart]
	}

	if index < len(object) && object[index] == ',' {
		index++
	} else {
		out = trimTrailingComma(out)
	}

	return out, index
}

// consumeValue advances past one value expression, function bodies
// included, and stops at the comma or closing bracket that ends the
// member.
func consumeValue(object string, index int) int {
	var braces, parens, brackets int

	for index < len(object) {
		switch char := object[index]; char {
		case '\'', '"':
			_, index = readString(object, index)
			continue

		case '{':
			braces++
		case '(':
			parens++
		case '[':
			brackets++

		case '}':
			if braces == 0 && parens == 0 && brackets == 0 {
				return index
			}
			braces--

		case ')':
			if parens > 0 {
				parens--
			}

		case ']':
			if brackets > 0 {
				brackets--
			} else if braces == 0 && parens == 0 {
				return index
			}

		case ',':
			if braces == 0 && parens == 0 && brackets == 0 {
				return index
			}
		}

		index++
	}

	return index
}

func trimTrailingComma(out []byte) []byte {
	end := len(out)
	for end > 0 {
		switch out[end-1] {
		case ' ', '\t', '\n', '\r':
			end--
		case ',':
			return out[:end-1]
		default:
			return out[:end]
		}
	}

	return out[:end]
}

// readString reads one quoted literal and returns it as a JSON string:
// single quotes become double quotes, embedded double quotes get
// escaped, escaped single quotes lose their backslash.
func readString(object string, start int) (string, int) {
	quote := object[start]
	content := []byte{'"'}

	index := start + 1
	for index < len(object) {
		char := object[index]

		if char == '\\' && index+1 < len(object) {
			next := object[index+1]
			if next == '\'' {
				content = append(content, '\'')
			} else {
				content = append(content, '\\', next)
			}
			index += 2
			continue
		}

		if char == quote {
			index++
			break
		}

		if char == '"' {
			content = append(content, '\\', '"')
			index++
			continue
		}

		content = append(content, char)
		index++
	}

	return string(append(content, '"')), index
}

func readWord(object string, start int) (string, int) {
	end := start
	for end < len(object) && isWordPart(object[end]) {
		end++
	}
	return object[start:end], end
}

// upcoming returns the next byte that is not whitespace.
func upcoming(object string, index int) byte {
	for index < len(object) {
		char := object[index]
		if char != ' ' && char != '\t' && char != '\n' && char != '\r' {
			return char
		}
		index++
	}
	return 0
}

func isWordStart(char byte) bool {
	return char == '_' || char == '$' ||
		('a' <= char && char <= 'z') ||
		('A' <= char && char <= 'Z')
}

func isWordPart(char byte) bool {
	return isWordStart(char) || ('0' <= char && char <= '9')
}

func isNumberPart(char byte) bool {
	return ('0' <= char && char <= '9') ||
		char == '.' || char == 'e' || char == 'E' || char == '+' || char == '-'
}
