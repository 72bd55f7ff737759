// Entity data taken from https://html.spec.whatwg.org/entities.json.
// This is a curated subset covering the legacy HTML4 entity set plus the
// handful of GitHub-Flavored-Markdown favorites; regenerate with
// `go run entitygen.go >entitytable.go` for the full WHATWG set.
// DO NOT EDIT by hand beyond re-running the generator.

package mmark

var htmlEntity = map[string]string{
	"amp":      "&",
	"AMP":      "&",
	"lt":       "<",
	"LT":       "<",
	"gt":       ">",
	"GT":       ">",
	"quot":     "\"",
	"QUOT":     "\"",
	"apos":     "'",
	"nbsp":     " ",
	"copy":     "©",
	"COPY":     "©",
	"reg":      "®",
	"REG":      "®",
	"trade":    "™",
	"TRADE":    "™",
	"hellip":   "…",
	"mdash":    "—",
	"ndash":    "–",
	"lsquo":    "‘",
	"rsquo":    "’",
	"ldquo":    "“",
	"rdquo":    "”",
	"sect":     "§",
	"para":     "¶",
	"middot":   "·",
	"deg":      "°",
	"plusmn":   "±",
	"times":    "×",
	"divide":   "÷",
	"frac12":   "½",
	"frac14":   "¼",
	"frac34":   "¾",
	"sup1":     "¹",
	"sup2":     "²",
	"sup3":     "³",
	"micro":    "µ",
	"laquo":    "«",
	"raquo":    "»",
	"iexcl":    "¡",
	"iquest":   "¿",
	"euro":     "€",
	"cent":     "¢",
	"pound":    "£",
	"yen":      "¥",
	"curren":   "¤",
	"dagger":   "†",
	"Dagger":   "‡",
	"bull":     "•",
	"permil":   "‰",
	"prime":    "′",
	"Prime":    "″",
	"larr":     "←",
	"uarr":     "↑",
	"rarr":     "→",
	"darr":     "↓",
	"harr":     "↔",
	"crarr":    "↵",
	"spades":   "♠",
	"clubs":    "♣",
	"hearts":   "♥",
	"diams":    "♦",
	"alpha":    "α",
	"beta":     "β",
	"gamma":    "γ",
	"delta":    "δ",
	"epsilon":  "ε",
	"pi":       "π",
	"sigma":    "σ",
	"omega":    "ω",
	"Alpha":    "Α",
	"Beta":     "Β",
	"Gamma":    "Γ",
	"Delta":    "Δ",
	"Omega":    "Ω",
	"infin":    "∞",
	"ne":       "≠",
	"le":       "≤",
	"ge":       "≥",
	"sum":      "∑",
	"prod":     "∏",
	"radic":    "√",
	"forall":   "∀",
	"exist":    "∃",
	"empty":    "∅",
	"isin":     "∈",
	"notin":    "∉",
	"cap":      "∩",
	"cup":      "∪",
	"sub":      "⊂",
	"sup":      "⊃",
	"sube":     "⊆",
	"supe":     "⊇",
	"oplus":    "⊕",
	"otimes":   "⊗",
	"perp":     "⊥",
	"there4":   "∴",
	"sim":      "∼",
	"cong":     "≅",
	"asymp":    "≈",
	"equiv":    "≡",
	"aacute":   "á",
	"eacute":   "é",
	"iacute":   "í",
	"oacute":   "ó",
	"uacute":   "ú",
	"Aacute":   "Á",
	"Eacute":   "É",
	"Iacute":   "Í",
	"Oacute":   "Ó",
	"Uacute":   "Ú",
	"agrave":   "à",
	"egrave":   "è",
	"igrave":   "ì",
	"ograve":   "ò",
	"ugrave":   "ù",
	"acirc":    "â",
	"ecirc":    "ê",
	"icirc":    "î",
	"ocirc":    "ô",
	"ucirc":    "û",
	"auml":     "ä",
	"euml":     "ë",
	"iuml":     "ï",
	"ouml":     "ö",
	"uuml":     "ü",
	"Auml":     "Ä",
	"Ouml":     "Ö",
	"Uuml":     "Ü",
	"ntilde":   "ñ",
	"Ntilde":   "Ñ",
	"ccedil":   "ç",
	"Ccedil":   "Ç",
	"szlig":    "ß",
	"aelig":    "æ",
	"AElig":    "Æ",
	"oslash":   "ø",
	"Oslash":   "Ø",
	"aring":    "å",
	"Aring":    "Å",
	"shy":      "­",
	"ensp":     " ",
	"emsp":     " ",
	"thinsp":   " ",
	"zwnj":     "‌",
	"zwj":      "‍",
	"lrm":      "‎",
	"rlm":      "‏",
	"sbquo":    "‚",
	"bdquo":    "„",
	"lsaquo":   "‹",
	"rsaquo":   "›",
	"oline":    "‾",
	"frasl":    "⁄",
	"weierp":   "℘",
	"image":    "ℑ",
	"real":     "ℜ",
	"alefsym":  "ℵ",
	"lceil":    "⌈",
	"rceil":    "⌉",
	"lfloor":   "⌊",
	"rfloor":   "⌋",
	"lang":     "⟨",
	"rang":     "⟩",
	"loz":      "◊",
	"check":    "✓",
	"cross":    "✗",
	"star":     "☆",
	"phone":    "☎",
	"num":      "#",
	"colon":    ":",
	"comma":    ",",
	"semi":     ";",
	"period":   ".",
	"excl":     "!",
	"quest":    "?",
	"sol":      "/",
	"bsol":     "\\",
	"lowbar":   "_",
	"verbar":   "|",
	"ast":      "*",
	"plus":     "+",
	"equals":   "=",
	"tilde":    "~",
	"grave":    "`",
	"lpar":     "(",
	"rpar":     ")",
	"lbrace":   "{",
	"rbrace":   "}",
	"lbrack":   "[",
	"rbrack":   "]",
	"commat":   "@",
	"dollar":   "$",
	"percnt":   "%",
	"amacr":    "ā",
	"emacr":    "ē",
	"imacr":    "ī",
	"omacr":    "ō",
	"umacr":    "ū",
}
