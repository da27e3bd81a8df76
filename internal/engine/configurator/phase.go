package configurator

// Phase is a step of a configure invocation.
type Phase string

// Phases in the order a successful invocation passes them.
// Idle and WipingDirectory are alternatives after DetectingStaleness.
const (
	PhaseParsingRequest     Phase = "parsing_request"
	PhaseSelectingToolchain Phase = "selecting_toolchain"
	PhaseResolvingDirectory Phase = "resolving_directory"
	PhaseDetectingStaleness Phase = "detecting_staleness"
	PhaseIdle               Phase = "idle"
	PhaseWipingDirectory    Phase = "wiping_directory"
	PhaseAssemblingFlags    Phase = "assembling_flags"
	PhaseInvokingGenerator  Phase = "invoking_generator"
	PhasePersistingState    Phase = "persisting_state"
	PhaseReportingFailure   Phase = "reporting_failure"
)
