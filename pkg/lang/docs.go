package lang

import (
	"fmt"
	"strings"
	"unicode"
)

var docs = [numLanguages]map[string]string{
	Generic: {
		"if":     "Conditional branch.",
		"else":   "Alternative branch of a conditional.",
		"for":    "Loop over a range or collection.",
		"while":  "Loop while a condition holds.",
		"return": "Return a value from the current function.",
	},
	Rust: {
		"fn":       "Declares a function.",
		"let":      "Binds a value to a variable. Immutable unless marked `mut`.",
		"mut":      "Marks a binding or reference as mutable.",
		"match":    "Pattern matching over a value. Arms must be exhaustive.",
		"impl":     "Implements methods or a trait for a type.",
		"trait":    "Declares a set of methods types can implement.",
		"struct":   "Declares a structure with named or tuple fields.",
		"enum":     "Declares a type with a fixed set of variants.",
		"pub":      "Makes an item visible outside its module.",
		"use":      "Brings a path into scope.",
		"mod":      "Declares a module.",
		"loop":     "Loops forever until `break`.",
		"unsafe":   "Opts out of some compiler guarantees for a block or item.",
		"async":    "Turns a function or block into a future.",
		"await":    "Suspends until a future completes.",
		"where":    "Adds trait bounds to generic parameters.",
		"dyn":      "Marks a trait object type.",
		"Option":   "An optional value: `Some(T)` or `None`.",
		"Result":   "Success `Ok(T)` or failure `Err(E)`.",
		"Vec":      "A growable, heap-allocated array.",
		"String":   "An owned, growable UTF-8 string.",
		"Box":      "An owned pointer to a heap allocation.",
		"println!": "Prints formatted text to stdout followed by a newline.",
		"vec!":     "Creates a `Vec` from a list of elements.",
		"format!":  "Builds a `String` from a format string.",
	},
	JavaScript: {
		"const":    "Declares a block-scoped binding that cannot be reassigned.",
		"let":      "Declares a block-scoped variable.",
		"var":      "Declares a function-scoped variable.",
		"function": "Declares a function.",
		"async":    "Declares a function that returns a Promise.",
		"await":    "Waits for a Promise to settle.",
		"class":    "Declares a class.",
		"import":   "Imports bindings from another module.",
		"export":   "Exports bindings from this module.",
		"typeof":   "Returns the type of a value as a string.",
		"Promise":  "Represents the eventual result of an asynchronous operation.",
		"console":  "Debugging console (`console.log`, `console.error`, ...).",
	},
	Python: {
		"def":      "Defines a function.",
		"class":    "Defines a class.",
		"lambda":   "Creates an anonymous single-expression function.",
		"yield":    "Produces a value from a generator.",
		"with":     "Runs a block inside a context manager.",
		"import":   "Imports a module.",
		"from":     "Imports names from a module.",
		"self":     "The instance a method is bound to.",
		"None":     "The null value.",
		"print":    "Writes values to stdout.",
		"len":      "Returns the number of items in a container.",
		"range":    "An immutable sequence of integers.",
		"nonlocal": "Rebinds a name from the enclosing function scope.",
	},
	C: {
		"int":      "Signed integer type, at least 16 bits.",
		"struct":   "Declares a structure type.",
		"typedef":  "Declares an alias for a type.",
		"sizeof":   "Size of a type or expression in bytes.",
		"static":   "Internal linkage or static storage duration.",
		"malloc":   "Allocates uninitialised heap memory.",
		"free":     "Releases memory allocated by malloc.",
		"printf":   "Writes formatted output to stdout.",
		"#include": "Includes a header file.",
		"#define":  "Defines a preprocessor macro.",
		"NULL":     "The null pointer constant.",
	},
	Cpp: {
		"class":     "Declares a class.",
		"namespace": "Declares a named scope.",
		"template":  "Declares a generic class or function.",
		"auto":      "Deduces the type from the initializer.",
		"constexpr": "Evaluates at compile time when possible.",
		"nullptr":   "The null pointer literal.",
		"virtual":   "Declares a method that can be overridden.",
		"std":       "The standard library namespace.",
		"vector":    "A dynamic contiguous array (std::vector).",
	},
	Java: {
		"class":        "Declares a class.",
		"interface":    "Declares an interface.",
		"extends":      "Inherits from a superclass.",
		"implements":   "Implements an interface.",
		"static":       "Belongs to the class rather than an instance.",
		"final":        "Cannot be reassigned, overridden or subclassed.",
		"synchronized": "Runs a block or method under the object's monitor.",
		"String":       "An immutable sequence of characters.",
		"System":       "Access to standard streams and system properties.",
	},
	HTML: {
		"div":    "Generic block container.",
		"span":   "Generic inline container.",
		"a":      "Hyperlink.",
		"p":      "Paragraph.",
		"img":    "Embedded image.",
		"script": "Embedded or referenced script.",
		"link":   "Relationship to an external resource, usually a stylesheet.",
		"head":   "Document metadata container.",
		"body":   "Document content.",
	},
	CSS: {
		"display":         "How an element is laid out (block, inline, flex, grid, ...).",
		"position":        "Positioning scheme (static, relative, absolute, fixed, sticky).",
		"margin":          "Space outside the border.",
		"padding":         "Space inside the border.",
		"color":           "Foreground text color.",
		"flex":            "Shorthand for flex-grow, flex-shrink and flex-basis.",
		"z-index":         "Stacking order of positioned elements.",
		"@media":          "Applies rules conditionally on media features.",
		"!important":      "Gives a declaration precedence over normal rules.",
		"justify-content": "Alignment along the main axis.",
	},
	Go: {
		"func":      "Declares a function or method.",
		"defer":     "Runs a call when the surrounding function returns.",
		"go":        "Starts a goroutine.",
		"chan":      "Channel type for communication between goroutines.",
		"select":    "Waits on multiple channel operations.",
		"interface": "Declares a method set.",
		"struct":    "Declares a structure type.",
		"range":     "Iterates over slices, maps, channels, strings and integers.",
		"make":      "Allocates and initialises a slice, map or channel.",
		"iota":      "Successive untyped integer constants within a const block.",
		"error":     "The built-in error interface.",
		"nil":       "Zero value for pointers, interfaces, maps, slices, channels and funcs.",
	},
}

// Describe returns documentation for keyword in the given language.
// It never returns an empty string: keywords without an entry get a description
// derived from their spelling.
func Describe(id ID, keyword string) string {
	id = id.normalize()
	if doc, ok := docs[id][keyword]; ok {
		return doc
	}
	return describeFallback(id, keyword)
}

// describeFallback guesses a description from the lexical shape of keyword.
func describeFallback(id ID, keyword string) string {
	if keyword == "" {
		return "No documentation available."
	}
	if strings.HasSuffix(keyword, "!") && len(keyword) > 1 {
		return fmt.Sprintf("Macro `%s`: expands to code at compile time.", keyword)
	}
	if bits, signed, ok := intWidth(keyword); ok {
		kind := "unsigned"
		if signed {
			kind = "signed"
		}
		if bits == "" {
			return fmt.Sprintf("Platform-sized %s integer type.", kind)
		}
		return fmt.Sprintf("%s-bit %s integer type.", bits, kind)
	}
	if strings.HasPrefix(keyword, "#") || strings.HasPrefix(keyword, "@") {
		return fmt.Sprintf("Directive `%s`.", keyword)
	}
	if isUpperIdent(keyword) && len(keyword) > 1 {
		return fmt.Sprintf("Constant `%s`.", keyword)
	}
	if r := []rune(keyword)[0]; unicode.IsUpper(r) {
		return fmt.Sprintf("Type `%s`.", keyword)
	}
	if len(keyword) <= 2 {
		return fmt.Sprintf("Short %s keyword `%s`.", displayName(id), keyword)
	}
	if strings.ContainsAny(keyword, "_-") {
		return fmt.Sprintf("Identifier `%s`.", keyword)
	}
	return fmt.Sprintf("%s keyword `%s`.", displayName(id), keyword)
}

// intWidth recognises integer type names: i32, u8, isize, int16_t, uint64, int.
// bits is empty for platform-sized types.
func intWidth(name string) (bits string, signed bool, ok bool) {
	rest := strings.TrimSuffix(strings.ToLower(name), "_t")
	long := false
	switch {
	case strings.HasPrefix(rest, "uint"):
		rest, signed, long = rest[4:], false, true
	case strings.HasPrefix(rest, "int"):
		rest, signed, long = rest[3:], true, true
	case strings.HasPrefix(rest, "u"):
		rest, signed = rest[1:], false
	case strings.HasPrefix(rest, "i"):
		rest, signed = rest[1:], true
	default:
		return "", false, false
	}
	switch {
	case rest == "8", rest == "16", rest == "32", rest == "64", rest == "128":
		return rest, signed, true
	case rest == "size" && !long, rest == "" && long:
		return "", signed, true
	}
	return "", false, false
}

func isUpperIdent(s string) bool {
	hasLetter := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasLetter = true
		case unicode.IsDigit(r), r == '_':
		default:
			return false
		}
	}
	return hasLetter
}

func displayName(id ID) string {
	switch id {
	case Generic:
		return "Generic"
	case JavaScript:
		return "JavaScript"
	case Cpp:
		return "C++"
	case HTML, CSS:
		return strings.ToUpper(id.String())
	default:
		name := id.String()
		return strings.ToUpper(name[:1]) + name[1:]
	}
}
