package config

import "time"

// Base application details
const AppName = "dlxed"
const ConfigDirName = "dlxed"
const DefaultConfigFileName = "config.toml"
const DefaultPaletteFileName = "palette.toml"
const DefaultLogFileName = "dlxed.log"

// Tab size bounds; SetTabSize clamps into this range.
const MinTabSize = 1
const MaxTabSize = 32

// Mouse behavior
const DoubleClickInterval = 300 * time.Millisecond

// Cursor blink duty cycle: visible after BlinkOn within each BlinkPeriod.
const CursorBlinkOn = 400 * time.Millisecond
const CursorBlinkPeriod = 800 * time.Millisecond

// Page motions keep this many lines of overlap.
const PageOverlap = 4

// UI layout
const StatusBarHeight = 1

const DefaultTabSize = 4
const DefaultSystemClipboard = true
const DefaultMaxUndoSize = 1024
