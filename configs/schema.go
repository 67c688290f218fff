package configs

// Schema closes the set of recognised configuration fields.
const Schema = `
// program file, comma separated integers
program?: string
// values pushed before the first resume
inputs?: [...int]
// per-machine instruction bound, 0 for none
max_steps?: int & >=0
// concurrent permutations in phase search
parallelism?: int & >0
// phase set for amplifier search
phases?: [...int]
// feed the last amplifier back into the first
feedback?: bool
`
