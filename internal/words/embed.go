package words

import _ "embed"

// defaultList is the word list used when no file is given.
//
//go:embed wordlist.txt
var defaultList string
