package lang

var snippets = [numLanguages][]Snippet{
	Generic: {
		{"if", "if (${1:condition}) {\n    ${2:body}\n}"},
		{"for", "for (${1:init}; ${2:condition}; ${3:step}) {\n    ${4:body}\n}"},
		{"while", "while (${1:condition}) {\n    ${2:body}\n}"},
	},
	Rust: {
		{"fn", "fn ${1:name}(${2:args}) -> ${3:ReturnType} {\n    ${4:body}\n}"},
		{"main", "fn main() {\n    ${1:body}\n}"},
		{"struct", "struct ${1:Name} {\n    ${2:field}: ${3:Type},\n}"},
		{"enum", "enum ${1:Name} {\n    ${2:Variant},\n}"},
		{"impl", "impl ${1:Type} {\n    ${2:body}\n}"},
		{"trait", "trait ${1:Name} {\n    ${2:body}\n}"},
		{"match", "match ${1:expr} {\n    ${2:pattern} => ${3:value},\n    _ => ${4:default},\n}"},
		{"iflet", "if let ${1:Some(x)} = ${2:expr} {\n    ${3:body}\n}"},
		{"for", "for ${1:item} in ${2:iter} {\n    ${3:body}\n}"},
		{"test", "#[test]\nfn ${1:name}() {\n    ${2:body}\n}"},
		{"derive", "#[derive(${1:Debug, Clone})]"},
	},
	JavaScript: {
		{"function", "function ${1:name}(${2:params}) {\n    ${3:body}\n}"},
		{"arrow", "const ${1:name} = (${2:params}) => {\n    ${3:body}\n};"},
		{"class", "class ${1:Name} {\n    constructor(${2:params}) {\n        ${3:body}\n    }\n}"},
		{"for", "for (let ${1:i} = 0; ${1:i} < ${2:length}; ${1:i}++) {\n    ${3:body}\n}"},
		{"forof", "for (const ${1:item} of ${2:items}) {\n    ${3:body}\n}"},
		{"log", "console.log(${1:value});"},
		{"try", "try {\n    ${1:body}\n} catch (${2:err}) {\n    ${3:handler}\n}"},
		{"import", "import { ${1:name} } from '${2:module}';"},
	},
	Python: {
		{"def", "def ${1:name}(${2:args}):\n    ${3:pass}"},
		{"class", "class ${1:Name}:\n    def __init__(self${2:, args}):\n        ${3:pass}"},
		{"ifmain", "if __name__ == \"__main__\":\n    ${1:main()}"},
		{"for", "for ${1:item} in ${2:items}:\n    ${3:pass}"},
		{"with", "with ${1:open(path)} as ${2:f}:\n    ${3:pass}"},
		{"try", "try:\n    ${1:pass}\nexcept ${2:Exception} as ${3:e}:\n    ${4:raise}"},
	},
	C: {
		{"main", "int main(int argc, char *argv[]) {\n    ${1:body}\n    return 0;\n}"},
		{"for", "for (int ${1:i} = 0; ${1:i} < ${2:n}; ${1:i}++) {\n    ${3:body}\n}"},
		{"struct", "struct ${1:name} {\n    ${2:int field};\n};"},
		{"include", "#include <${1:stdio.h}>"},
		{"printf", "printf(\"${1:%d}\\n\", ${2:value});"},
	},
	Cpp: {
		{"main", "int main() {\n    ${1:body}\n    return 0;\n}"},
		{"class", "class ${1:Name} {\npublic:\n    ${1:Name}();\n    ~${1:Name}();\n};"},
		{"for", "for (auto& ${1:item} : ${2:items}) {\n    ${3:body}\n}"},
		{"include", "#include <${1:iostream}>"},
		{"cout", "std::cout << ${1:value} << std::endl;"},
	},
	Java: {
		{"main", "public static void main(String[] args) {\n    ${1:body}\n}"},
		{"class", "public class ${1:Name} {\n    ${2:body}\n}"},
		{"sout", "System.out.println(${1:value});"},
		{"for", "for (int ${1:i} = 0; ${1:i} < ${2:n}; ${1:i}++) {\n    ${3:body}\n}"},
		{"foreach", "for (${1:Type} ${2:item} : ${3:items}) {\n    ${4:body}\n}"},
	},
	HTML: {
		{"html5", "<!DOCTYPE html>\n<html>\n<head>\n    <title>${1:Title}</title>\n</head>\n<body>\n    ${2:content}\n</body>\n</html>"},
		{"div", "<div class=\"${1:class}\">${2:content}</div>"},
		{"link", "<link rel=\"stylesheet\" href=\"${1:style.css}\">"},
		{"script", "<script src=\"${1:app.js}\"></script>"},
		{"a", "<a href=\"${1:url}\">${2:text}</a>"},
	},
	CSS: {
		{"flex", "display: flex;\njustify-content: ${1:center};\nalign-items: ${2:center};"},
		{"media", "@media (max-width: ${1:768px}) {\n    ${2:rules}\n}"},
		{"rule", "${1:selector} {\n    ${2:property}: ${3:value};\n}"},
	},
	Go: {
		{"func", "func ${1:name}(${2:args}) ${3:error} {\n\t${4:body}\n}"},
		{"main", "func main() {\n\t${1:body}\n}"},
		{"iferr", "if err != nil {\n\treturn ${1:err}\n}"},
		{"for", "for ${1:i} := 0; ${1:i} < ${2:n}; ${1:i}++ {\n\t${3:body}\n}"},
		{"forr", "for ${1:_}, ${2:v} := range ${3:items} {\n\t${4:body}\n}"},
		{"struct", "type ${1:Name} struct {\n\t${2:Field} ${3:Type}\n}"},
		{"test", "func Test${1:Name}(t *testing.T) {\n\t${2:body}\n}"},
	},
}
