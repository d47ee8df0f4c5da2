/*
Package launcher implements the business logic of the hmcrun training-job launcher.

The project has three main source packages:
`cmd`: Main applications, tools and libraries.
`internal`: Private application and library code.
`pkg`: Library code that's ok to use by external applications

The launcher builds a fixed environment variable set for the numerical
backend, resolves a training runner script and an argument file, and runs
the script in the foreground under an interactive debugger.
*/
package launcher
