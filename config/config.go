// Package config holds exporter configuration: output format
// suffixes, fixed output subdirectory names, the format version stamp
// and the charmap used for names in the binary layouts. A Config is
// constructed once and passed to the exporters; nothing in here is
// process-global.
package config

// Format suffixes drive encoding selection: a destination path ending
// in the binary suffix gets the binary layout, ".json" the structured
// document, ".glb"/".fbx" the interchange exports.
type Formats struct {
	StaticMesh   string `yaml:"static_mesh"`
	SkeletalMesh string `yaml:"skeletal_mesh"`
	Skeleton     string `yaml:"skeleton"`
	Animation    string `yaml:"animation"`
	Map          string `yaml:"map"`
	JSON         string `yaml:"json"`
	GLTF         string `yaml:"gltf"`
	FBX          string `yaml:"fbx"`
}

// Subdirs are the fixed output subdirectories referenced resources are
// exported to during a map export, relative to the map file.
type Subdirs struct {
	StaticMesh string `yaml:"static_mesh"`
	Skeletal   string `yaml:"skeletal_mesh"`
	Skeleton   string `yaml:"skeleton"`
	Animation  string `yaml:"animation"`
	Textures   string `yaml:"textures"`
}

type Logging struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

type Config struct {
	// FileVersion is stamped into the structured documents. The binary
	// layouts are defined by write order and carry no magic.
	FileVersion int     `yaml:"file_version"`
	Encoding    string  `yaml:"encoding"`
	Formats     Formats `yaml:"formats"`
	Subdirs     Subdirs `yaml:"subdirs"`
	Logging     Logging `yaml:"logging"`
}

func Default() *Config {
	return &Config{
		FileVersion: 1,
		Encoding:    "Windows 1252",
		Formats: Formats{
			StaticMesh:   ".stm",
			SkeletalMesh: ".skm",
			Skeleton:     ".skt",
			Animation:    ".anm",
			Map:          ".map",
			JSON:         ".json",
			GLTF:         ".glb",
			FBX:          ".fbx",
		},
		Subdirs: Subdirs{
			StaticMesh: "StaticMesh",
			Skeletal:   "SkeletalMesh",
			Skeleton:   "SkeletalMesh/Skeleton",
			Animation:  "SkeletalMesh/AnimSequence",
			Textures:   "Textures",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}
