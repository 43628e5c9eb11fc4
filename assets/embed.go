// Package assets embeds the default word lists so nagaram runs without any
// files on disk. The lists are small samples; point NAGARAM_WORDLIST_DIR at a
// directory holding full twl.txt and sowpods.txt for real use.
package assets

import "embed"

//go:embed twl.txt sowpods.txt
var FS embed.FS
