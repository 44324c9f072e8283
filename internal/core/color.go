package core

// Color identifies the role of a screen cell. The platform maps each role to
// a concrete terminal color from the active palette.
type Color uint8

// Cell roles used by the snake board.
const (
	ColorDefault Color = iota
	ColorHUD
	ColorBorder
	ColorSnakeHead
	ColorSnakeBody
	ColorApple
	ColorRottenApple
	ColorBrick
	ColorOverlay
)

// String returns the palette key for the color role.
func (c Color) String() string {
	switch c {
	case ColorHUD:
		return "hud"
	case ColorBorder:
		return "border"
	case ColorSnakeHead:
		return "snake_head"
	case ColorSnakeBody:
		return "snake"
	case ColorApple:
		return "apple"
	case ColorRottenApple:
		return "rotten_apple"
	case ColorBrick:
		return "brick"
	case ColorOverlay:
		return "overlay"
	default:
		return "default"
	}
}
