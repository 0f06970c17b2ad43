package component

// EncounterScript names the tengo script that manages a boss encounter.
type EncounterScript struct {
	Path string
}

var EncounterScriptComponent = NewComponent[EncounterScript]()
