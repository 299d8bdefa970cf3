package config

// Configfile represents the structure of the mutrun.yaml configuration file.
// Every field is optional; absent fields keep their defaults.
type Configfile struct {
	Version      string      `yaml:"version"`
	Root         *string     `yaml:"root"`
	SourceRoot   *string     `yaml:"source_root"`
	TestRoot     *string     `yaml:"test_root"`
	CacheDir     *string     `yaml:"cache_dir"`
	BackupSuffix *string     `yaml:"backup_suffix"`
	TestPrefix   *string     `yaml:"test_prefix"`
	EnvBinDir    *string     `yaml:"env_bin_dir"`
	TypeChecker  *CheckerDTO `yaml:"type_checker"`
	TestRunner   *RunnerDTO  `yaml:"test_runner"`
	VCS          *VCSDTO     `yaml:"vcs"`
}

// CheckerDTO configures the type checker.
type CheckerDTO struct {
	Tool   *string `yaml:"tool"`
	Target *string `yaml:"target"`
}

// RunnerDTO configures the test runner.
type RunnerDTO struct {
	Tool  *string  `yaml:"tool"`
	Flags []string `yaml:"flags"`
}

// VCSDTO configures the status query.
type VCSDTO struct {
	Command     []string `yaml:"command"`
	StatusWidth *int     `yaml:"status_width"`
}
