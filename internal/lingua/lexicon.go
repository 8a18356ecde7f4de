package lingua

// commonVerbs lists base forms of frequent English verbs. Matched against the
// lemma, so inflected forms ("running", "typed") classify as verbs too.
var commonVerbs = []string{
	"accept", "add", "agree", "analyze", "answer", "apply", "argue", "arrive",
	"ask", "attend", "bake", "become", "begin", "believe", "break", "bring",
	"build", "buy", "calculate", "call", "carry", "catch", "change", "check",
	"choose", "clean", "click", "climb", "close", "code", "collect", "come",
	"commit", "compare", "compile", "complete", "compute", "configure",
	"connect", "cook", "copy", "create", "cut", "dance", "debug", "decide",
	"delete", "deliver", "deploy", "describe", "design", "develop", "discuss",
	"dive", "download", "draw", "drink", "drive", "eat", "edit", "email",
	"enjoy", "explain", "explore", "fail", "fetch", "find", "finish", "fish",
	"fix", "float", "fly", "follow", "forget", "get", "give", "go", "grill",
	"happen", "hear", "help", "hike", "hold", "improve", "install", "invite",
	"join", "jump", "keep", "know", "laugh", "launch", "learn", "leave",
	"listen", "live", "load", "log", "look", "lose", "make", "measure", "meet",
	"merge", "move", "need", "open", "organize", "paddle", "paint", "parse",
	"pay", "plan", "play", "practice", "prepare", "present", "print", "push",
	"query", "read", "relax", "release", "remember", "remove", "rename",
	"render", "repair", "reply", "report", "rest", "review", "run", "sail",
	"save", "say", "schedule", "search", "see", "sell", "send", "serve",
	"share", "show", "sing", "sit", "sleep", "smile", "solve", "speak",
	"splash", "stand", "start", "stop", "study", "submit", "surf", "swim",
	"take", "talk", "teach", "tell", "test", "think", "throw", "tokenize",
	"train", "travel", "try", "type", "understand", "update", "upload", "use",
	"validate", "verify", "visit", "wait", "walk", "want", "wash", "watch",
	"wear", "work", "write",
}

// properNounLexicon lists lowercase forms of specific products, brands,
// libraries, and platforms — names that denote a particular thing rather than
// general vocabulary. Matches the normalizer's ecosystem denylist.
var properNounLexicon = []string{
	"angular", "anthropic", "aws", "azure", "chatgpt", "claude", "django",
	"docker", "eclipse", "elasticsearch", "emacs", "express", "fastapi",
	"flask", "gcp", "github", "gitlab", "gpt", "intellij", "java",
	"javascript", "jupyter", "keras", "kubernetes", "matplotlib", "mongodb",
	"mysql", "nextjs", "nltk", "node", "numpy", "openai", "pandas",
	"postgresql", "pycharm", "python", "pytorch", "react", "redis",
	"sklearn", "spacy", "tensorflow", "typescript", "vim", "vscode", "vue",
}

// stopwordList holds English function words excluded from term extraction and
// never treated as content vocabulary.
var stopwordList = []string{
	"a", "about", "above", "after", "again", "all", "also", "am", "an", "and",
	"any", "are", "as", "at", "be", "because", "been", "before", "being",
	"below", "between", "both", "but", "by", "can", "could", "did", "do",
	"does", "doing", "down", "during", "each", "few", "for", "from",
	"further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"him", "his", "how", "i", "if", "in", "into", "is", "it", "its", "just",
	"me", "more", "most", "my", "no", "nor", "not", "now", "of", "off", "on",
	"once", "only", "or", "other", "our", "ours", "out", "over", "own",
	"same", "she", "should", "so", "some", "such", "than", "that", "the",
	"their", "theirs", "them", "then", "there", "these", "they", "this",
	"those", "through", "to", "too", "under", "until", "up", "very", "was",
	"we", "were", "what", "when", "where", "which", "while", "who", "whom",
	"why", "will", "with", "would", "you", "your", "yours",
}

// irregularLemmas maps irregular inflected forms to their base form. Covers
// the verbs and nouns most likely to appear in scenario vocabulary.
var irregularLemmas = map[string]string{
	"ate": "eat", "began": "begin", "better": "good", "best": "good",
	"bought": "buy", "broke": "break", "broken": "break", "brought": "bring",
	"built": "build", "came": "come", "caught": "catch", "children": "child",
	"chose": "choose", "chosen": "choose", "did": "do", "done": "do",
	"drank": "drink", "drawn": "draw", "drew": "draw", "driven": "drive",
	"drove": "drive", "eaten": "eat", "feet": "foot", "fell": "fall",
	"felt": "feel", "flew": "fly", "flown": "fly", "forgot": "forget",
	"found": "find", "gave": "give", "given": "give", "gone": "go",
	"got": "get", "gotten": "get", "heard": "hear", "held": "hold",
	"hidden": "hide", "hid": "hide", "kept": "keep", "knew": "know",
	"known": "know", "left": "leave", "lost": "lose", "made": "make",
	"men": "man", "met": "meet", "mice": "mouse", "paid": "pay",
	"people": "person", "ran": "run", "rode": "ride", "said": "say",
	"sang": "sing", "sat": "sit", "saw": "see", "seen": "see",
	"sent": "send", "slept": "sleep", "sold": "sell", "spoke": "speak",
	"spoken": "speak", "stood": "stand", "swam": "swim", "swum": "swim",
	"taken": "take", "taught": "teach", "teeth": "tooth", "thought": "think",
	"threw": "throw", "thrown": "throw", "told": "tell", "took": "take",
	"went": "go", "woke": "wake", "women": "woman", "won": "win",
	"wore": "wear", "worn": "wear", "wrote": "write", "written": "write",
}
