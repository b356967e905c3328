// Package testutil holds scene fixtures shared by tests across the module.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/tscnkit/pkg/scene"
	"github.com/joshuapare/tscnkit/pkg/types"
)

// PlayerScene is a small Godot 4 scene using every heading keyword.
var PlayerScene = strings.Join([]string{
	"[gd_scene load_steps=3 format=3 uid=\"uid://b6x8\"]",
	"",
	"[ext_resource type=\"Script\" path=\"res://player.gd\" id=\"1_abc\"]",
	"",
	"[sub_resource type=\"RectangleShape2D\" id=\"RectangleShape2D_1\"]",
	"size = Vector2(32, 32)",
	"",
	"[node name=\"Player\" type=\"CharacterBody2D\"]",
	"script = ExtResource(\"1_abc\")",
	"speed = 200.0",
	"",
	"[node name=\"Shape\" type=\"CollisionShape2D\" parent=\".\"]",
	"shape = SubResource(\"RectangleShape2D_1\")",
	"",
	"[connection signal=\"body_entered\" from=\".\" to=\".\" method=\"_on_body_entered\"]",
	"",
}, "\n")

// LevelScene is a Godot 4 scene whose body values hold arrays, a multi-line
// dictionary and brackets inside strings, ahead of later headers.
var LevelScene = strings.Join([]string{
	"[gd_scene load_steps=4 format=3 uid=\"uid://c4lvl\"]",
	"",
	"[ext_resource type=\"Texture2D\" uid=\"uid://tex\" path=\"res://tiles.png\" id=\"1_tiles\"]",
	"",
	"[sub_resource type=\"Animation\" id=\"Animation_idle\"]",
	"resource_name = \"idle\"",
	"length = 1.0",
	"tracks/0/keys = {",
	"\"times\": PackedFloat32Array(0, 0.5),",
	"\"values\": [Vector2(0, 0), Vector2(0, -2)]",
	"}",
	"",
	"[sub_resource type=\"TileSet\" id=\"TileSet_1\"]",
	"tile_size = Vector2i(16, 16)",
	"",
	"[node name=\"Level\" type=\"Node2D\"]",
	"metadata/spawn_points = [Vector2(0, 0), Vector2(64, 0)]",
	"metadata/config = {\"gravity\": 9.8, \"name\": \"[main]\"}",
	"",
	"[node name=\"Enemy\" type=\"CharacterBody2D\" parent=\".\"]",
	"patrol = [ 1, 2, 3 ]",
	"",
	"[connection signal=\"ready\" from=\".\" to=\".\" method=\"_on_ready\" flags=3]",
	"",
}, "\n")

// WriteScene writes text to name inside a fresh temp directory and returns
// the file path.
//
// Example:
//
//	path := testutil.WriteScene(t, "main.tscn", testutil.PlayerScene)
func WriteScene(t testing.TB, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// LoadScene loads text with the heap allocator and fails the test on error.
func LoadScene(t testing.TB, text string) *types.Document {
	t.Helper()
	doc, err := scene.Load([]byte(text), nil)
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}
	return doc
}
