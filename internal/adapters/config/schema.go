package config

// ProjectFile is the structure of the optional .cptools.yaml file.
type ProjectFile struct {
	BuildRoot         string   `yaml:"build_root"`
	Generator         string   `yaml:"generator"`
	CMakeGenerator    string   `yaml:"cmake_generator"`
	PCHCleanTarget    string   `yaml:"pch_clean_target"`
	SystemRecordCheck *bool    `yaml:"system_record_check"`
	ExtraArgs         []string `yaml:"extra_args"`
}
