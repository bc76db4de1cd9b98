package lang

var keywords = [numLanguages][]string{
	Generic: {
		"break", "case", "class", "const", "continue", "default", "do", "else",
		"false", "for", "function", "if", "import", "null", "return", "switch",
		"true", "var", "while",
	},
	Rust: {
		"as", "async", "await", "break", "const", "continue", "crate", "dyn",
		"else", "enum", "extern", "false", "fn", "for", "if", "impl", "in",
		"let", "loop", "match", "mod", "move", "mut", "pub", "ref", "return",
		"self", "Self", "static", "struct", "super", "trait", "true", "type",
		"unsafe", "use", "where", "while",
		"i8", "i16", "i32", "i64", "i128", "isize",
		"u8", "u16", "u32", "u64", "u128", "usize",
		"f32", "f64", "bool", "char", "str",
		"String", "Vec", "Option", "Some", "None", "Result", "Ok", "Err",
		"Box", "Rc", "Arc", "HashMap", "HashSet",
		"println!", "print!", "eprintln!", "format!", "vec!", "panic!",
		"assert!", "assert_eq!", "todo!", "unimplemented!",
	},
	JavaScript: {
		"async", "await", "break", "case", "catch", "class", "const",
		"continue", "debugger", "default", "delete", "do", "else", "export",
		"extends", "false", "finally", "for", "function", "if", "import", "in",
		"instanceof", "let", "new", "null", "return", "static", "super",
		"switch", "this", "throw", "true", "try", "typeof", "undefined", "var",
		"void", "while", "yield",
		"Array", "Object", "Promise", "JSON", "Math", "Map", "Set",
		"console", "document", "window",
	},
	Python: {
		"False", "None", "True", "and", "as", "assert", "async", "await",
		"break", "class", "continue", "def", "del", "elif", "else", "except",
		"finally", "for", "from", "global", "if", "import", "in", "is",
		"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
		"while", "with", "yield",
		"print", "len", "range", "enumerate", "isinstance", "open", "self",
		"dict", "list", "set", "tuple", "str", "int", "float", "bool",
	},
	C: {
		"auto", "break", "case", "char", "const", "continue", "default", "do",
		"double", "else", "enum", "extern", "float", "for", "goto", "if",
		"inline", "int", "long", "register", "restrict", "return", "short",
		"signed", "sizeof", "static", "struct", "switch", "typedef", "union",
		"unsigned", "void", "volatile", "while",
		"int8_t", "int16_t", "int32_t", "int64_t",
		"uint8_t", "uint16_t", "uint32_t", "uint64_t", "size_t",
		"NULL", "printf", "malloc", "free", "memcpy", "strlen",
		"#include", "#define", "#ifdef", "#ifndef", "#endif",
	},
	Cpp: {
		"auto", "bool", "break", "case", "catch", "char", "class", "const",
		"constexpr", "continue", "default", "delete", "do", "double", "else",
		"enum", "explicit", "extern", "false", "float", "for", "friend", "if",
		"inline", "int", "long", "mutable", "namespace", "new", "noexcept",
		"nullptr", "operator", "override", "private", "protected", "public",
		"return", "short", "signed", "sizeof", "static", "static_cast",
		"struct", "switch", "template", "this", "throw", "true", "try",
		"typedef", "typename", "union", "unsigned", "using", "virtual", "void",
		"volatile", "while",
		"std", "string", "vector", "map", "unique_ptr", "shared_ptr", "cout",
		"endl",
	},
	Java: {
		"abstract", "assert", "boolean", "break", "byte", "case", "catch",
		"char", "class", "continue", "default", "do", "double", "else", "enum",
		"extends", "false", "final", "finally", "float", "for", "if",
		"implements", "import", "instanceof", "int", "interface", "long",
		"new", "null", "package", "private", "protected", "public", "return",
		"short", "static", "super", "switch", "synchronized", "this", "throw",
		"throws", "true", "try", "var", "void", "volatile", "while",
		"String", "Integer", "List", "ArrayList", "Map", "HashMap", "Object",
		"System",
	},
	HTML: {
		"a", "body", "br", "button", "div", "footer", "form", "h1", "h2", "h3",
		"head", "header", "html", "img", "input", "label", "li", "link", "main",
		"meta", "nav", "ol", "option", "p", "script", "section", "select",
		"span", "style", "table", "td", "textarea", "th", "title", "tr", "ul",
		"class", "href", "id", "src", "alt", "type", "value",
	},
	CSS: {
		"align-items", "background", "background-color", "border",
		"border-radius", "bottom", "box-shadow", "color", "cursor", "display",
		"flex", "flex-direction", "font-family", "font-size", "font-weight",
		"gap", "grid", "height", "justify-content", "left", "line-height",
		"margin", "max-width", "min-height", "opacity", "overflow", "padding",
		"position", "right", "text-align", "top", "transform", "transition",
		"width", "z-index",
		"absolute", "auto", "block", "center", "fixed", "inherit", "none",
		"relative", "solid",
		"@media", "@import", "@keyframes", "!important",
	},
	Go: {
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select", "struct",
		"switch", "type", "var",
		"bool", "byte", "error", "float32", "float64", "int", "int8", "int16",
		"int32", "int64", "rune", "string", "uint", "uint8", "uint16",
		"uint32", "uint64", "uintptr", "any",
		"append", "cap", "close", "copy", "delete", "len", "make", "new",
		"panic", "recover", "nil", "true", "false", "iota",
	},
}

var defaults = [numLanguages][]string{
	Generic:    {"class", "const", "else", "for", "function", "if", "return", "while"},
	Rust:       {"enum", "fn", "for", "if", "impl", "let", "match", "mod", "pub", "struct", "use", "while"},
	JavaScript: {"class", "const", "for", "function", "if", "import", "let", "return"},
	Python:     {"class", "def", "for", "from", "if", "import", "return", "while", "with"},
	C:          {"#define", "#include", "for", "if", "int", "return", "struct", "void", "while"},
	Cpp:        {"class", "for", "if", "namespace", "return", "std", "template", "using"},
	Java:       {"class", "for", "if", "private", "public", "return", "static", "void"},
	HTML:       {"a", "body", "div", "head", "html", "p", "script", "span"},
	CSS:        {"background", "color", "display", "font-size", "height", "margin", "padding", "width"},
	Go:         {"for", "func", "if", "import", "package", "return", "struct", "type", "var"},
}
