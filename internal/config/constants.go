package config

// Base application details
const AppName = "rio"
const ConfigDirName = "rio"
const DefaultConfigFileName = "config.toml"
const DefaultThemeFileName = "theme.toml"
const DefaultLogFileName = "rio.log"

// UI Layout
const StatusBarHeight = 1

// Editor defaults
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const SystemClipboard = true
