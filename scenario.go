package diorama

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario YAML format: an ordered list of commands, each exactly one of
// spawn, apply, or wait. Sprite and dialogue payloads mirror the object
// builders.
//
//	commands:
//	  - spawn:
//	      sprite:
//	        id: hero
//	        texture: assets/hero.png
//	        position: [1.2, 0]
//	        scale: [0.8, 0.8]
//	        layer: character
//	        z: 5
//	  - wait: 3
//	  - apply:
//	      dialogue:
//	        id: intro
//	        speaker: Lena
//	        text: Hello there.

type scenarioFile struct {
	Commands []scenarioCommand `yaml:"commands"`
}

type scenarioCommand struct {
	Spawn *scenarioObject `yaml:"spawn"`
	Apply *scenarioObject `yaml:"apply"`
	Wait  *float64        `yaml:"wait"`
}

type scenarioObject struct {
	Sprite   *scenarioSprite   `yaml:"sprite"`
	Dialogue *scenarioDialogue `yaml:"dialogue"`
}

type scenarioSprite struct {
	ID       string      `yaml:"id"`
	Texture  string      `yaml:"texture"`
	Position [2]float64  `yaml:"position"`
	Scale    *[2]float64 `yaml:"scale"`
	Layer    string      `yaml:"layer"`
	Z        int         `yaml:"z"`
	Hidden   bool        `yaml:"hidden"`
}

type scenarioDialogue struct {
	ID      string `yaml:"id"`
	Speaker string `yaml:"speaker"`
	Text    string `yaml:"text"`
	Hidden  bool   `yaml:"hidden"`
}

// LoadScenario reads a YAML scenario file into an ordered command list.
func LoadScenario(path string) ([]Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("diorama: read scenario %s: %w", path, err)
	}
	commands, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("diorama: scenario %s: %w", path, err)
	}
	return commands, nil
}

// ParseScenario parses YAML scenario data into an ordered command list.
// Malformed input (negative waits, unknown layers, missing payloads) is
// rejected deterministically at parse time, never at run time.
func ParseScenario(data []byte) ([]Command, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Commands) == 0 {
		return nil, fmt.Errorf("no commands")
	}

	commands := make([]Command, 0, len(file.Commands))
	for i, raw := range file.Commands {
		cmd, err := raw.toCommand()
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}

func (c scenarioCommand) toCommand() (Command, error) {
	set := 0
	if c.Spawn != nil {
		set++
	}
	if c.Apply != nil {
		set++
	}
	if c.Wait != nil {
		set++
	}
	if set != 1 {
		return Command{}, fmt.Errorf("want exactly one of spawn, apply, wait; got %d", set)
	}

	if c.Wait != nil {
		if *c.Wait < 0 {
			return Command{}, fmt.Errorf("negative wait duration %v", *c.Wait)
		}
		return Wait(*c.Wait), nil
	}

	payload := c.Spawn
	ctor := Spawn
	if c.Apply != nil {
		payload = c.Apply
		ctor = Apply
	}
	obj, err := payload.toObject()
	if err != nil {
		return Command{}, err
	}
	return ctor(obj), nil
}

func (o *scenarioObject) toObject() (SceneObject, error) {
	switch {
	case o.Sprite != nil && o.Dialogue != nil:
		return nil, fmt.Errorf("want sprite or dialogue, not both")
	case o.Sprite != nil:
		return o.Sprite.toObject()
	case o.Dialogue != nil:
		return o.Dialogue.toObject(), nil
	default:
		return nil, fmt.Errorf("empty object: want sprite or dialogue")
	}
}

func (s *scenarioSprite) toObject() (SpriteObject, error) {
	if s.Texture == "" {
		return SpriteObject{}, fmt.Errorf("sprite has no texture")
	}
	layer, err := ParseLayer(s.Layer)
	if err != nil {
		return SpriteObject{}, err
	}

	obj := NewSprite(s.Texture, layer, s.Z).
		At(s.Position[0], s.Position[1]).
		WithHidden(s.Hidden)
	if s.ID != "" {
		obj = obj.WithID(s.ID)
	}
	if s.Scale != nil {
		obj = obj.Scaled(s.Scale[0], s.Scale[1])
	}
	return obj, nil
}

func (d *scenarioDialogue) toObject() DialogueObject {
	obj := NewDialogue(d.Text).WithHidden(d.Hidden)
	if d.ID != "" {
		obj = obj.WithID(d.ID)
	}
	if d.Speaker != "" {
		obj = obj.WithSpeaker(d.Speaker)
	}
	return obj
}
