/*
Package syncreg simulates a synchronous, width-parameterized, enable-gated
hardware register.

The register is the usual leaf element of a synchronous design: on every
rising clock edge it either holds its output, captures its data input when
Enable is asserted, or forces its output to a configured reset value when
Reset is asserted. Reset is synchronous and always wins over Enable on the
same edge.

The simulation is driven by explicit Tick calls, one per clock edge. See
the bench package for driving several registers from a shared clock.

*/
package syncreg
