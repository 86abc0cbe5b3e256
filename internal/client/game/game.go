// Package game implements the beer guessing game.
//
// A hidden beer is drawn from a catalogue. Each guess names a beer from the
// same catalogue and gets a hint telling which of its attributes match the
// hidden one. Guessing continues until the name matches or the game is reset.
package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
)

var (
	ErrUnknownBeer = errors.New("unknown beer")
	ErrBlankName   = errors.New("beer without a name")
)

type Beer struct {
	Name    string
	Style   string
	Country string
	Emoji   string
}

// Catalogue is used when New gets no beers.
var Catalogue = []Beer{
	{Name: "Heineken", Style: "Lager", Country: "Netherlands", Emoji: "🍺🇳🇱"},
	{Name: "Guinness", Style: "Stout", Country: "Ireland", Emoji: "🍺🇮🇪"},
	{Name: "Corona", Style: "Lager", Country: "Mexico", Emoji: "🍺🇲🇽"},
	{Name: "Sapporo", Style: "Lager", Country: "Japan", Emoji: "🍺🇯🇵"},
	{Name: "Budweiser", Style: "Lager", Country: "USA", Emoji: "🍺🇺🇸"},
}

// Hint says which attributes of a guess match the hidden beer.
type Hint struct {
	Style   bool
	Country bool
	Emoji   bool
	Correct bool
}

type Attempt struct {
	Guess Beer
	Hint  Hint
}

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

type Game struct {
	mu      sync.Mutex
	beers   []Beer
	pick    Picker
	answer  Beer
	history []Attempt
}

// New starts a game over beers, or over Catalogue when beers is empty.
// A nil pick uses the global source.
func New(beers []Beer, pick Picker) (*Game, error) {
	if len(beers) == 0 {
		beers = Catalogue
	}
	for i, b := range beers {
		if strings.TrimSpace(b.Name) == "" {
			return nil, fmt.Errorf("beer %d: %w", i, ErrBlankName)
		}
	}
	if pick == nil {
		pick = globalPicker{}
	}

	g := &Game{beers: append([]Beer(nil), beers...), pick: pick}
	g.draw()
	return g, nil
}

// Beers lists the names a guess may use.
func (g *Game) Beers() []string {
	names := make([]string, len(g.beers))
	for i, b := range g.beers {
		names[i] = b.Name
	}
	return names
}

// Guess compares the named beer with the hidden one. Names match case
// insensitively. An unknown name is not counted as an attempt.
func (g *Game) Guess(name string) (Hint, error) {
	guess, ok := g.find(name)
	if !ok {
		return Hint{}, ErrUnknownBeer
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	h := Hint{
		Style:   guess.Style == g.answer.Style,
		Country: guess.Country == g.answer.Country,
		Emoji:   guess.Emoji == g.answer.Emoji,
		Correct: guess.Name == g.answer.Name,
	}
	g.history = append(g.history, Attempt{Guess: guess, Hint: h})
	return h, nil
}

// Solved reports whether the last attempt was correct.
func (g *Game) Solved() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := len(g.history)
	return n > 0 && g.history[n-1].Hint.Correct
}

func (g *Game) Attempts() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.history)
}

func (g *Game) History() []Attempt {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Attempt(nil), g.history...)
}

// Answer reveals the hidden beer.
func (g *Game) Answer() Beer {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.answer
}

// Reset draws a new hidden beer and forgets all attempts.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.history = nil
	g.drawLocked()
}

func (g *Game) draw() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.drawLocked()
}

func (g *Game) drawLocked() {
	g.answer = g.beers[g.pick.IntN(len(g.beers))]
}

func (g *Game) find(name string) (Beer, bool) {
	name = strings.TrimSpace(name)
	for _, b := range g.beers {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return Beer{}, false
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }
