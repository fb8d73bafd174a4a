// This file is part of PiGUS.
//
// PiGUS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PiGUS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PiGUS.  If not, see <https://www.gnu.org/licenses/>.

//go:build linux

package psram

import (
	"os"
	"runtime"
	"unsafe"

	"github.com/pigus/pigus/curated"
	"golang.org/x/sys/unix"
)

// DefaultSpeed is the default SPI clock speed in Hz.
const DefaultSpeed = 32000000

// spidev ioctl requests. these are _IOW('k', nr, size).
const (
	spiIOCMessage1     = 0x40206b00
	spiIOCWrMode       = 0x40016b01
	spiIOCWrBitsPerWrd = 0x40016b03
	spiIOCWrMaxSpeedHz = 0x40046b04
)

// spiIOCTransfer is struct spi_ioc_transfer from linux/spi/spidev.h.
type spiIOCTransfer struct {
	txBuf       uint64
	rxBuf       uint64
	len         uint32
	speedHz     uint32
	delayUsecs  uint16
	bitsPerWord uint8
	csChange    uint8
	txNbits     uint8
	rxNbits     uint8
	wordDelay   uint8
	pad         uint8
}

// Spidev implements the Link interface with the Linux spidev driver.
type Spidev struct {
	f     *os.File
	speed uint32
}

// OpenSpidev opens the spidev device in SPI mode 0 with eight bits per word.
func OpenSpidev(device string, speed uint32) (*Spidev, error) {
	f, err := os.OpenFile(device, os.O_RDWR, 0)
	if err != nil {
		return nil, curated.Errorf(LinkError, err)
	}

	s := &Spidev{f: f, speed: speed}

	mode := uint8(0)
	bits := uint8(8)

	if err := s.ioctl(spiIOCWrMode, unsafe.Pointer(&mode)); err != nil {
		f.Close()
		return nil, curated.Errorf(LinkError, err)
	}
	if err := s.ioctl(spiIOCWrBitsPerWrd, unsafe.Pointer(&bits)); err != nil {
		f.Close()
		return nil, curated.Errorf(LinkError, err)
	}
	if err := s.ioctl(spiIOCWrMaxSpeedHz, unsafe.Pointer(&speed)); err != nil {
		f.Close()
		return nil, curated.Errorf(LinkError, err)
	}

	return s, nil
}

func (s *Spidev) ioctl(req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, s.f.Fd(), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Transfer implements the Link interface.
func (s *Spidev) Transfer(tx []byte, rx []byte) error {
	if len(tx) == 0 || len(rx) < len(tx) {
		return curated.Errorf(LinkError, "invalid transfer buffers")
	}

	xfer := spiIOCTransfer{
		txBuf:       uint64(uintptr(unsafe.Pointer(&tx[0]))),
		rxBuf:       uint64(uintptr(unsafe.Pointer(&rx[0]))),
		len:         uint32(len(tx)),
		speedHz:     s.speed,
		bitsPerWord: 8,
	}

	err := s.ioctl(spiIOCMessage1, unsafe.Pointer(&xfer))
	runtime.KeepAlive(tx)
	runtime.KeepAlive(rx)

	return err
}

// Close the spidev device.
func (s *Spidev) Close() error {
	return s.f.Close()
}
