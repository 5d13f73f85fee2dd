package layout

// defaultPanelTOML is the panel used when no description file is given.
const defaultPanelTOML = `# synthpanel description
# Each [[groups]] block is a parameter group; each [[groups.params]] a control.
# kind = "knob" | "toggle" | "wave"

[settings]
sensitivity = 3.0
max_rotation = 140.0
gauge_gap = 3.0
icon_base = "waves"
icon_ext = "svg"
icon_fragment = "svg"

[[groups]]
name = "osc1"
label = "Osc 1"

  [[groups.params]]
  name = "wave"
  label = "Wave"
  kind = "wave"
  options = ["sine", "square", "sawtooth", "triangle"]
  value = "sawtooth"

  [[groups.params]]
  name = "octave"
  label = "Oct"
  kind = "knob"
  min = -3
  max = 3
  step = 1
  default = 0
  zero_centered = true

  [[groups.params]]
  name = "detune"
  label = "Detune"
  kind = "knob"
  min = -50
  max = 50
  step = 1
  default = 0
  zero_centered = true

  [[groups.params]]
  name = "level"
  label = "Level"
  kind = "knob"
  min = 0
  max = 100
  step = 1
  default = 80

[[groups]]
name = "filter"
label = "Filter"

  [[groups.params]]
  name = "enabled"
  label = "On"
  kind = "toggle"
  checked = true

  [[groups.params]]
  name = "cutoff"
  label = "Cutoff"
  kind = "knob"
  min = 20
  max = 20000
  step = 10
  default = 8000

  [[groups.params]]
  name = "resonance"
  label = "Res"
  kind = "knob"
  min = 0
  max = 1
  step = 0.01
  default = 0.2

[[groups]]
name = "env"
label = "Envelope"

  [[groups.params]]
  name = "attack"
  label = "A"
  kind = "knob"
  min = 0
  max = 2000
  step = 1
  default = 5

  [[groups.params]]
  name = "decay"
  label = "D"
  kind = "knob"
  min = 0
  max = 2000
  step = 1
  default = 150

  [[groups.params]]
  name = "sustain"
  label = "S"
  kind = "knob"
  min = 0
  max = 1
  step = 0.01
  default = 0.65

  [[groups.params]]
  name = "release"
  label = "R"
  kind = "knob"
  min = 0
  max = 4000
  step = 1
  default = 200

[[groups]]
name = "lfo"
label = "LFO"

  [[groups.params]]
  name = "enabled"
  label = "On"
  kind = "toggle"
  checked = false

  [[groups.params]]
  name = "wave"
  label = "Wave"
  kind = "wave"
  options = ["sine", "square", "sawtooth", "triangle"]
  value = "triangle"

  [[groups.params]]
  name = "rate"
  label = "Rate"
  kind = "knob"
  min = 0.1
  max = 20
  step = 0.1
  default = 5

  [[groups.params]]
  name = "depth"
  label = "Depth"
  kind = "knob"
  min = 0
  max = 100
  step = 1
  default = 0

[[groups]]
name = "master"
label = "Master"

  [[groups.params]]
  name = "pan"
  label = "Pan"
  kind = "knob"
  min = -64
  max = 64
  step = 1
  default = 0
  zero_centered = true

  [[groups.params]]
  name = "volume"
  label = "Vol"
  kind = "knob"
  min = 0
  max = 100
  step = 1
  default = 100
`
