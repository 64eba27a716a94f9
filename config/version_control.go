package config

// Version system:
// vMAJOR.MINOR.PATCH
const Main_version = "v1.0.0" // Printed in the benchmark header of every run
