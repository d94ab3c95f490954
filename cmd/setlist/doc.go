// Command setlist reads Clone Hero style song cache files and maintains
// a searchable catalog of the songs found on each device.
package main
