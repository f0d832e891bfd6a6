// Package letterboard holds the letterboard state machine.
//
// # State and Actions
//
// [State] is the aggregate root: font readiness, the board metrics snapshot,
// headings, tiles, panel navigation, the craft notecard overlay and the shared
// polaroid z-index counter. [Action] is a closed set of variants; the
// unexported marker method keeps other packages from adding more.
//
// [Reducer.Reduce] is a pure transition function. It never mutates its
// input: every slice it changes is copied first, so earlier states remain
// valid snapshots.
//
// # Layout Preservation
//
// ADD_HEADING and INIT_OR_REFLOW_LAYOUT re-lay every heading from scratch,
// then substitute any existing tile with the same id that was manually
// moved. A dragged tile therefore keeps its position across any number of
// reflows.
//
// # Dispatch
//
// [Store] is the single serialized dispatch point: actions apply one at a
// time in receipt order. [Controller] layers the application wiring on top,
// deciding when a measurement should trigger a reflow and when opening the
// gallery should generate polaroids.
//
// # Randomness
//
// Actions that need randomness carry a seed, so Reduce stays deterministic.
// The Controller draws seeds from its own seeded source.
package letterboard
