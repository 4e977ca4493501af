package consts

// Anchor attribute names handled specially by links
const (
	AttrHref  = "href"
	AttrStyle = "style"
)

