package sanitize

// dangerousTags lists HTML tag names whose opening and closing fragments are
// removed at LevelStandard. Removal is substring-based: both "<tag" and
// "</tag" are deleted wherever they appear, case-insensitively.
var dangerousTags = []string{
	// Script and execution vectors
	"script", "noscript", "template", "xmp", "plaintext", "listing",

	// SVG / MathML vectors
	"svg", "math", "foreignobject", "animate", "set", "use",

	// Embedded content
	"iframe", "frame", "frameset", "object", "embed", "applet",

	// Media tags
	"img", "image", "video", "audio", "source", "track", "picture", "canvas",

	// Form and input tags
	"form", "input", "button", "textarea", "select", "option", "optgroup",
	"label", "fieldset", "output", "keygen", "isindex",

	// Head and structural tags
	"html", "head", "body", "title", "base", "link", "meta", "style",

	// Legacy and misc vectors
	"marquee", "blink", "bgsound", "layer", "ilayer", "xml", "dialog",
}

// eventHandlers lists inline event handler attribute names removed at
// LevelStandard. The trailing "=" is part of the removed fragment.
var eventHandlers = []string{
	"onabort", "onafterprint", "onanimationend", "onanimationiteration",
	"onanimationstart", "onauxclick", "onbeforeprint", "onbeforeunload",
	"onblur", "oncanplay", "oncanplaythrough", "onchange", "onclick",
	"oncontextmenu", "oncopy", "oncut", "ondblclick", "ondrag", "ondragend",
	"ondragenter", "ondragleave", "ondragover", "ondragstart", "ondrop",
	"ondurationchange", "onended", "onerror", "onfocus", "onfocusin",
	"onfocusout", "onhashchange", "oninput", "oninvalid", "onkeydown",
	"onkeypress", "onkeyup", "onload", "onloadeddata", "onloadedmetadata",
	"onloadstart", "onmessage", "onmousedown", "onmouseenter", "onmouseleave",
	"onmousemove", "onmouseout", "onmouseover", "onmouseup", "onmousewheel",
	"onoffline", "ononline", "onpagehide", "onpageshow", "onpaste", "onpause",
	"onplay", "onplaying", "onpointerdown", "onpointerup", "onpopstate",
	"onprogress", "onreset", "onresize", "onscroll", "onseeked", "onseeking",
	"onselect", "onstalled", "onstorage", "onsubmit", "onsuspend",
	"ontimeupdate", "ontoggle", "ontouchcancel", "ontouchend", "ontouchmove",
	"ontouchstart", "ontransitionend", "onunload", "onvolumechange",
	"onwaiting", "onwheel",
}

// dangerousSchemes lists URI schemes removed at LevelStandard.
var dangerousSchemes = []string{
	"javascript:", "vbscript:", "data:",
}

// residualPatterns lists attack substrings removed after tag and handler
// removal. These close bypass vectors that survive the earlier layers, such
// as leftover entity prefixes and escape sequences re-assembled by deletion.
var residualPatterns = []string{
	"eval(", "alert(", "prompt(", "confirm(", "settimeout(", "setinterval(",
	"function(", "expression(", "execscript(", "import(",
	"document.", "window.", "location.", "navigator.",
	"innerhtml", "outerhtml", "insertadjacenthtml", "fromcharcode",
	"srcdoc", "formaction", "xlink:href",
	"&#", "\\x", "\\u", "%3c", "%3e",
}

// namedEntities maps the fixed table of named HTML entities decoded at
// LevelStandard. Decoding deliberately reveals encoded attacks so the removal
// layers can catch them. The ampersand entity is decoded last (see
// decodeEntities) so it cannot manufacture new entities mid-pass.
var namedEntities = map[string]string{
	"&lt;":     "<",
	"&gt;":     ">",
	"&quot;":   "\"",
	"&apos;":   "'",
	"&nbsp;":   " ",
	"&sol;":    "/",
	"&bsol;":   "\\",
	"&lpar;":   "(",
	"&rpar;":   ")",
	"&colon;":  ":",
	"&semi;":   ";",
	"&equals;": "=",
	"&grave;":  "`",
}

// forbiddenChars is the fixed character set deleted at LevelStrict.
const forbiddenChars = "<>{}[]|\\^`\"'"
